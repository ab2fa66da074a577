package savedata

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"
)

func SaveData(path string, data interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	encoder := gob.NewEncoder(file)
	return encoder.Encode(data)
}

func LoadData(path string, data interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	decoder := gob.NewDecoder(file)
	return decoder.Decode(data)
}

//cut out the extension (.json) and replace it with .gob
func GobName(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".gob"
}

// SaveJSON writes data as indented JSON, replacing any previous file.
func SaveJSON(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "\t")
	if err := enc.Encode(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
