package limitio_test

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hdt3213/limitio"
)

func ExampleNewLimitedReader() {
	src := strings.NewReader("hello world")
	view := limitio.NewLimitedReader(src, 5)

	head, _ := io.ReadAll(view)
	fmt.Printf("%q\n", head)

	// the owner picks up right where the view stopped
	tail, _ := io.ReadAll(src)
	fmt.Printf("%q\n", tail)

	// Output:
	// "hello"
	// " world"
}

func ExampleLimitedReader_SetLimit() {
	src := strings.NewReader("123456789")
	view := limitio.NewLimitedReader(src, 3)

	buf := make([]byte, 8)
	n, _ := view.Read(buf)
	fmt.Printf("%q\n", buf[:n])

	view.SetLimit(2)
	n, _ = view.Read(buf)
	fmt.Printf("%q\n", buf[:n])

	// Output:
	// "123"
	// "45"
}

func ExampleLimitedBufferedReader() {
	src := bufio.NewReader(strings.NewReader("abcdef"))
	view := limitio.NewLimitedBufferedReader(src, 4)

	buf, _ := view.FillBuffer()
	fmt.Printf("%q\n", buf)

	view.Consume(2)
	buf, _ = view.FillBuffer()
	fmt.Printf("%q\n", buf)

	// Output:
	// "abcd"
	// "cd"
}
