// This file is part of eehw.
//
// eehw is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// eehw is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with eehw.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/eehw/hardware/memory"
	"github.com/jetsetilly/eehw/hardware/memory/hwregs"
	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
	"github.com/jetsetilly/eehw/hardware/preferences"
	"github.com/jetsetilly/eehw/hardware/stubs"
	"github.com/jetsetilly/eehw/logger"
	"github.com/jetsetilly/eehw/modalflag"
	"github.com/jetsetilly/eehw/prefs"
	"github.com/jetsetilly/eehw/script"
	"github.com/jetsetilly/eehw/statsview"
	"github.com/jetsetilly/eehw/version"
	"golang.org/x/term"
)

// exit values
const (
	exitOK       = 0
	exitArgs     = 10
	exitModeFail = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SUMMARY", "STATE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "SUMMARY":
		err = summary(md, output)
	case "STATE":
		err = state(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeFail
	}

	return exitOK
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("SCRIPT is a file of register writes. see the script package for the format")

	trace := md.AddBool("trace", false, "log every register write")
	echo := md.AddBool("echo", false, "echo serial console output")
	stats := md.AddBool("statsview", false, "run the stats server")
	cmdPrefs := md.AddString("prefs", "", "preferences for this run only. eg. \"hardware.ee.trace::true\"")
	load := md.AddString("load", "", "register state to load before the script")
	save := md.AddString("save", "", "file to save the register state to after the script")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single SCRIPT argument is required")
	}

	if *stats {
		statsview.Launch(output)
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer prefs.PopCommandLineStack()
	}

	hw, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	if *trace {
		if err := hw.TraceWrites.Set(true); err != nil {
			return err
		}
	}
	if *echo {
		if err := hw.SIOEcho.Set(true); err != nil {
			return err
		}
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	cmds, err := script.Parse(f)
	if err != nil {
		return err
	}

	mem := memory.NewMemory(hw, stubs.Peripherals(hw, output))
	mem.Reset()

	if *load != "" {
		if err := loadState(mem.Regs, *load); err != nil {
			return err
		}
	}

	err = script.Run(mem, cmds, output)

	writeLog(output)

	if err != nil {
		return err
	}

	if *save != "" {
		return saveState(mem.Regs, *save)
	}

	return nil
}

func summary(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	io.WriteString(output, memorymap.Summary())
	return nil
}

func state(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("prints the contents of a register state file saved by RUN mode")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single state file argument is required")
	}

	regs := hwregs.NewRegisters()
	if err := loadState(regs, md.GetArg(0)); err != nil {
		return err
	}

	io.WriteString(output, regs.String())
	return nil
}

func loadState(regs *hwregs.Registers, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return regs.Load(f)
}

func saveState(regs *hwregs.Registers, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := regs.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeLog writes the central log to output. the log is colourised if output
// is a terminal.
func writeLog(output io.Writer) {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Write(logger.NewColorizer(output))
		return
	}
	logger.Write(output)
}
