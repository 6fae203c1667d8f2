// Command orbit opens a window and draws a triangle, optionally seen from a
// camera orbiting it.
//
//	go run ./cmd/orbit                      # orbiting camera
//	go run ./cmd/orbit --variant triangle   # static triangle
//	go run ./cmd/orbit --variant window     # clear only
//	go run ./cmd/orbit check --vertex a.vert --fragment b.frag
package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	f := &flags{}
	if err := newRootCmd(f).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Message:", err)
		if f.pauseOnError {
			pause()
		}
		os.Exit(1)
	}
}

// pause keeps a console opened by double-click visible until a key is entered.
func pause() {
	fmt.Print("Enter a key...")
	_, _, _ = bufio.NewReader(os.Stdin).ReadRune()
}
