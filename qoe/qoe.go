package qoe

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"qoeanalysis/common"
)

//receiver log lines of interest:
//[TIMING-BREAKDOWN] frame=17 e2e=123ms encode=5ms pacer=3ms network=40ms jitter_buf=60ms (packet_buf=20ms frame_buf=40ms) decode=8ms
var timingRegex = regexp.MustCompile(`\[TIMING-BREAKDOWN\].*?e2e=(\d+)ms\s+encode=(\d+)ms\s+pacer=(\d+)ms\s+network=(\d+)ms\s+jitter_buf=(\d+)ms\s+\(packet_buf=(\d+)ms\s+frame_buf=(\d+)ms\)\s+decode=(\d+)ms`)

//[VideoQuality-CoreFreeze] Freeze Count: 3 Total Freeze Duration (ms): 1200 Rebuffering Ratio: 0.02 Playback Duration (ms): 60000
var freezeRegex = regexp.MustCompile(`\[VideoQuality-CoreFreeze\].*?Freeze Count:\s*(\d+).*?Total Freeze Duration \(ms\):\s*(\d+).*?Rebuffering Ratio:\s*([\d.]+).*?Playback Duration \(ms\):\s*(\d+)`)

//[VideoQuality-Bitrate] Payload Bytes Received: 123456789
var bitrateRegex = regexp.MustCompile(`\[VideoQuality-Bitrate\].*?Payload Bytes Received:\s*(\d+)`)

// TimingBreakdown collects the per-frame delay components, one sample per
// TIMING-BREAKDOWN line, in milliseconds.
type TimingBreakdown struct {
	E2e       []float64
	Encode    []float64
	Pacer     []float64
	Network   []float64
	JitterBuf []float64
	PacketBuf []float64
	FrameBuf  []float64
	Decode    []float64
}

type FreezeInfo struct {
	FreezeCount        int     `json:"freeze_count"`
	FreezeDurationMs   int     `json:"freeze_duration_ms"`
	RebufferingRatio   float64 `json:"rebuffering_ratio"`
	PlaybackDurationMs int     `json:"playback_duration_ms"`
}

// ReceiverLog is everything extracted from one receiver-side log file.
// Freeze and BytesReceived keep the last occurrence, the receiver logs a
// running summary and the final line is the full session.
type ReceiverLog struct {
	Timing        TimingBreakdown
	Freeze        *FreezeInfo
	BytesReceived int64
}

// ParseReceiverLog scans a receiver log for timing, freeze and bitrate
// markers. Marker lines that fail their pattern are rejected outright.
func ParseReceiverLog(path string) (*ReceiverLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rl := &ReceiverLog{}
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		switch {
		case strings.Contains(line, "TIMING-BREAKDOWN"):
			m := timingRegex.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: %s:%d: unparseable TIMING-BREAKDOWN line", common.ErrMalformedRecord, path, lineno)
			}
			rl.Timing.E2e = append(rl.Timing.E2e, mustMs(m[1]))
			rl.Timing.Encode = append(rl.Timing.Encode, mustMs(m[2]))
			rl.Timing.Pacer = append(rl.Timing.Pacer, mustMs(m[3]))
			rl.Timing.Network = append(rl.Timing.Network, mustMs(m[4]))
			rl.Timing.JitterBuf = append(rl.Timing.JitterBuf, mustMs(m[5]))
			rl.Timing.PacketBuf = append(rl.Timing.PacketBuf, mustMs(m[6]))
			rl.Timing.FrameBuf = append(rl.Timing.FrameBuf, mustMs(m[7]))
			rl.Timing.Decode = append(rl.Timing.Decode, mustMs(m[8]))
		case strings.Contains(line, "VideoQuality-CoreFreeze"):
			m := freezeRegex.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: %s:%d: unparseable CoreFreeze line", common.ErrMalformedRecord, path, lineno)
			}
			count, _ := strconv.Atoi(m[1])
			dur, _ := strconv.Atoi(m[2])
			ratio, err := strconv.ParseFloat(m[3], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d: %v", common.ErrMalformedRecord, path, lineno, err)
			}
			playback, _ := strconv.Atoi(m[4])
			rl.Freeze = &FreezeInfo{FreezeCount: count, FreezeDurationMs: dur, RebufferingRatio: ratio, PlaybackDurationMs: playback}
		case strings.Contains(line, "VideoQuality-Bitrate"):
			m := bitrateRegex.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: %s:%d: unparseable Bitrate line", common.ErrMalformedRecord, path, lineno)
			}
			rl.BytesReceived, _ = strconv.ParseInt(m[1], 10, 64)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rl, nil
}

// the regex groups only admit digits
func mustMs(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// BitrateMbps derives the received bitrate from payload bytes and
// playback duration, 0 when either is unknown.
func (rl *ReceiverLog) BitrateMbps() float64 {
	if rl.BytesReceived == 0 || rl.Freeze == nil || rl.Freeze.PlaybackDurationMs <= 0 {
		return 0
	}
	return float64(rl.BytesReceived) * 8 / float64(rl.Freeze.PlaybackDurationMs) / 1000
}
