package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/edera-dev/paxmark/paxmark"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  paxmark -[PpEeMmRrSs] FILE...")
	fmt.Println("  paxmark -v FILE...")
	fmt.Println("  paxmark -z FILE...")
	fmt.Println()
	fmt.Println("Marks binaries with PaX flags in the user.pax.flags extended")
	fmt.Println("attribute. Each letter toggles one feature on every FILE;")
	fmt.Println("uppercase enables it, lowercase disables it.")
	fmt.Println()
	fmt.Println("  P/p   PAGEEXEC   paging-based non-executable pages")
	fmt.Println("  E/e   EMUTRAMP   trampoline emulation")
	fmt.Println("  M/m   MPROTECT   mprotect hardening")
	fmt.Println("  R/r   RANDMMAP   mmap base randomization")
	fmt.Println("  S/s   SEGMEXEC   segmentation-based non-executable pages")
	fmt.Println()
	fmt.Println("  -v    print the current flags instead of changing them")
	fmt.Println("  -z    remove the marking, restoring the kernel default")
	fmt.Println("  -h    display this help message")
}

func view(path string) error {
	flags, err := paxmark.View(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %v\n", path, flags)
	return nil
}

// helpRequested is true if any argument asks for help. Help takes
// precedence over every other mode and touches no file.
func helpRequested(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

// forEach runs op on every path, reporting failures as it goes. One
// bad path does not stop the remaining ones.
func forEach(paths []string, op func(string) error) (ok bool) {
	ok = true
	for _, p := range paths {
		if err := op(p); err != nil {
			log.Print(err)
			ok = false
		}
	}
	return ok
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("paxmark: ")

	args := os.Args[1:]
	if helpRequested(args) {
		usage()
		return
	}
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	mode, paths := args[0], args[1:]
	if !strings.HasPrefix(mode, "-") || len(mode) < 2 {
		usage()
		log.Fatalf("need a flag cluster, got %q", mode)
	}
	if len(paths) == 0 {
		usage()
		log.Fatal("need at least one target file")
	}

	switch mode {
	case "-v":
		if !forEach(paths, view) {
			os.Exit(1)
		}
	case "-z":
		if !forEach(paths, paxmark.Reset) {
			os.Exit(1)
		}
	default:
		toggles, err := paxmark.ParseToggles(mode[1:])
		if err != nil {
			log.Fatal(err)
		}
		if err := paxmark.ApplyAll(paths, toggles); err != nil {
			log.Fatal(err)
		}
	}
}
