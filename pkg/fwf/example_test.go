package fwf_test

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ssargent/fixedwidth/pkg/fwf"
)

// ExampleRecordReader demonstrates decoding a small fixed-width file
// with one numeric and one text column.
func ExampleRecordReader() {
	f, err := os.CreateTemp("", "fwf_example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString("  101Anne      \n  102Birgitta  \n"); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	idCol, err := fwf.NewColumn(0, "id", fwf.Numeric, 0, 5, 0)
	if err != nil {
		log.Fatal(err)
	}
	nameCol, err := fwf.NewColumn(1, "name", fwf.Text, 5, 10, 0)
	if err != nil {
		log.Fatal(err)
	}

	layout, err := fwf.NewLayout(fwf.LayoutConfig{
		Path:         f.Name(),
		RecordLength: 15,
		Columns:      []fwf.Column{idCol, nameCol},
	})
	if err != nil {
		log.Fatal(err)
	}

	reader, err := fwf.NewRecordReader(fwf.ReaderConfig{Layout: layout})
	if err != nil {
		log.Fatal(err)
	}
	defer reader.Close()

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d %s\n", rec[0], rec[1])
	}
	fmt.Printf("good=%d bad=%d\n", reader.GoodLines(), reader.BadLines())

	// Output:
	// 101 Anne
	// 102 Birgitta
	// good=2 bad=0
}
