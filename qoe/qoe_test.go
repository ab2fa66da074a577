package qoe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"qoeanalysis/common"
)

func timingLine(e2e int) string {
	return fmt.Sprintf("[TIMING-BREAKDOWN] e2e=%dms encode=5ms pacer=3ms network=40ms jitter_buf=60ms (packet_buf=20ms frame_buf=40ms) decode=8ms", e2e)
}

func writeRecvLog(t *testing.T, path string, e2es []int) {
	t.Helper()
	var b strings.Builder
	b.WriteString("receiver starting\n")
	for _, v := range e2es {
		b.WriteString(timingLine(v))
		b.WriteString("\n")
	}
	b.WriteString("[VideoQuality-CoreFreeze] Freeze Count: 2 Total Freeze Duration (ms): 800 Rebuffering Ratio: 0.013 Playback Duration (ms): 60000\n")
	b.WriteString("[VideoQuality-Bitrate] Payload Bytes Received: 15000000\n")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
}

func TestParseReceiverLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ratio.recv.log")
	writeRecvLog(t, path, []int{100, 120, 140})

	rl, err := ParseReceiverLog(path)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 120, 140}, rl.Timing.E2e)
	require.Equal(t, []float64{5, 5, 5}, rl.Timing.Encode)
	require.Equal(t, []float64{40, 40, 40}, rl.Timing.Network)
	require.Equal(t, []float64{8, 8, 8}, rl.Timing.Decode)

	require.NotNil(t, rl.Freeze)
	require.Equal(t, 2, rl.Freeze.FreezeCount)
	require.Equal(t, 800, rl.Freeze.FreezeDurationMs)
	require.Equal(t, 0.013, rl.Freeze.RebufferingRatio)
	require.Equal(t, 60000, rl.Freeze.PlaybackDurationMs)
	require.Equal(t, int64(15000000), rl.BytesReceived)

	// 15 MB over 60 s of playback
	require.InDelta(t, 2.0, rl.BitrateMbps(), 0.001)
}

func TestParseReceiverLogBrokenTimingLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ratio.recv.log")
	data := "[TIMING-BREAKDOWN] e2e=100ms encode=5ms\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := ParseReceiverLog(path)
	require.ErrorIs(t, err, common.ErrMalformedRecord)
}

func TestBitrateUnknownWithoutPlayback(t *testing.T) {
	rl := &ReceiverLog{BytesReceived: 1000}
	require.Equal(t, 0.0, rl.BitrateMbps())
}

func TestAnalyzeQoeWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "lte_run1")
	writeRecvLog(t, base+".ratio.recv.log", []int{100, 110, 120, 130})
	writeRecvLog(t, base+".gcc.recv.log", []int{180, 190, 200, 210})

	require.NoError(t, AnalyzeQoe(base))

	for _, name := range []string{"lte_run1.e2ecdf.pdf", "lte_run1.qoe.json", "lte_run1.e2e.csv"} {
		info, err := os.Stat(filepath.Join(dir, "plots", name))
		require.NoError(t, err, name)
		require.Greater(t, info.Size(), int64(0), name)
	}

	var sum RunSummary
	f, err := os.Open(filepath.Join(dir, "plots", "lte_run1.qoe.json"))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, common.UnMarshalResult(f, &sum))
	require.Equal(t, 115.0, sum.Ratio.Timing["e2e"].Mean)
	require.Equal(t, 195.0, sum.Gcc.Timing["e2e"].Mean)
	require.Equal(t, 4, sum.Ratio.Timing["e2e"].Count)
	require.InDelta(t, 2.0, sum.Ratio.BitrateMbps, 0.001)
}

func TestAnalyzeQoeNoTimingLines(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "lte_run1")
	require.NoError(t, os.WriteFile(base+".ratio.recv.log", []byte("nothing here\n"), 0644))
	require.NoError(t, os.WriteFile(base+".gcc.recv.log", []byte("nothing here\n"), 0644))

	err := AnalyzeQoe(base)
	require.ErrorIs(t, err, common.ErrEmptyResult)
	_, serr := os.Stat(filepath.Join(dir, "plots", "lte_run1.e2ecdf.pdf"))
	require.True(t, os.IsNotExist(serr))
}
