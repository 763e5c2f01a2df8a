// seehuhn.de/go/ase - read and write Adobe Swatch Exchange files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/ase"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s file.ase\n", os.Args[0])
		os.Exit(1)
	}

	p, err := ase.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ins := &inspector{
		useColor: term.IsTerminal(int(os.Stdout.Fd())),
		models:   map[string]int{},
	}

	fmt.Printf("%s: ASE version %d.%d\n\n",
		flag.Arg(0), p.Version.Major, p.Version.Minor)
	for _, item := range p.Items {
		switch item := item.(type) {
		case *ase.Entry:
			ins.showEntry("", item)
		case *ase.Group:
			fmt.Printf("group %q\n", item.Name)
			for _, e := range item.Entries {
				ins.showEntry("    ", e)
			}
		}
	}

	pr := message.NewPrinter(language.English)
	pr.Printf("\n%d swatches total\n", p.NumEntries())
	models := maps.Keys(ins.models)
	sort.Strings(models)
	for _, m := range models {
		pr.Printf("  %s: %d\n", m, ins.models[m])
	}
}

type inspector struct {
	useColor bool
	models   map[string]int
}

func (ins *inspector) showEntry(indent string, e *ase.Entry) {
	swatch := ""
	if ins.useColor {
		r, g, b, _ := e.Color.RGBA()
		swatch = fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r>>8, g>>8, b>>8)
	}
	name := e.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("%s%s%-20s %v  %s  [%s]\n",
		indent, swatch, name, e.Color, ase.Hex(e.Color), e.Usage)
	ins.models[modelName(e.Color)]++
}

func modelName(c ase.Color) string {
	switch c.(type) {
	case ase.Gray:
		return "Gray"
	case ase.RGB:
		return "RGB"
	case ase.CMYK:
		return "CMYK"
	case ase.Lab:
		return "Lab"
	}
	return "unknown"
}
