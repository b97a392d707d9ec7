package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/db47h/netview"
	"github.com/db47h/netview/ioui"
)

func main() {
	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	var nl netview.Netlist
	if err := json.NewDecoder(in).Decode(&nl); err != nil {
		log.Fatal("decoding netlist: ", err)
	}

	g, warnings, err := netview.Convert(&nl)
	if err != nil {
		log.Fatal("converting netlist: ", err)
	}
	for _, w := range warnings {
		log.Print(w)
	}

	ioui.Promote(g)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		log.Fatal("encoding output: ", err)
	}
}
