package savedata

import (
	"encoding/csv"
	"errors"
	"os"
)

type SaveCSV struct {
	Name string
	Fp   *os.File
	Data [][]string
}

func (mycsv *SaveCSV) NewCSV(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	mycsv.Name = filename
	mycsv.Fp = file
	mycsv.Data = make([][]string, 0)
	return nil
}

func (mycsv *SaveCSV) CloseCSV() error {
	if mycsv.Fp == nil {
		return errors.New("csv not initialized")
	}
	w := csv.NewWriter(mycsv.Fp)
	for _, value := range mycsv.Data {
		if err := w.Write(value); err != nil {
			mycsv.Fp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		mycsv.Fp.Close()
		return err
	}
	return mycsv.Fp.Close()
}

//Append one row to csv data, no actual write until CloseCSV
func (mycsv *SaveCSV) AddOneToCSV(data []string) {
	if mycsv.Fp != nil {
		mycsv.Data = append(mycsv.Data, data)
	}
}
