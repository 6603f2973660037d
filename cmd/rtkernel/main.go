package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/rtkernel/internal/rtkernel"
)

func main() {
	rtkernel.Debug = os.Getenv("DEBUG") != ""
	rtkernel.PNG = os.Getenv("PNG") != ""
	if w, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil {
		rtkernel.Workers = w
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := rtkernel.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
