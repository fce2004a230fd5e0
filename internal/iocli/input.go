package iocli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// errExit ends the session on EOF or interrupt.
var errExit = errors.New("input closed")

type reply struct {
	line string
	err  error
}

// input reads one line per request in its own goroutine, so a blocked
// read never prevents the controller from seeing a canceled context.
type input struct {
	r   *bufio.Reader
	fd  uintptr
	tty bool
	req chan bool
	res chan reply
}

func newInput(r io.Reader) *input {
	in := &input{
		r:   bufio.NewReader(r),
		req: make(chan bool),
		res: make(chan reply, 1),
	}
	if f, ok := r.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		in.fd = f.Fd()
		in.tty = true
	}
	go in.loop()
	return in
}

func (in *input) loop() {
	for masked := range in.req {
		var rp reply
		if masked && in.tty {
			var bs []byte
			bs, rp.err = term.ReadPassword(in.fd)
			rp.line = string(bs)
		} else {
			rp.line, rp.err = in.r.ReadString('\n')
			if rp.err == io.EOF && rp.line != "" {
				rp.err = nil
			}
		}
		in.res <- rp
	}
}

// read returns the next line without its line ending. Hidden lines are
// read without echo when the input is a terminal.
func (in *input) read(ctx context.Context, masked bool) (string, error) {
	select {
	case in.req <- masked:
	case <-ctx.Done():
		return "", errExit
	}

	select {
	case rp := <-in.res:
		if rp.err != nil {
			return "", errExit
		}
		return strings.TrimRight(rp.line, "\r\n"), nil
	case <-ctx.Done():
		return "", errExit
	}
}

// masksInput reports if hidden reads suppress echo.
func (in *input) masksInput() bool {
	return in.tty
}

func (in *input) close() {
	close(in.req)
}
