package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

type input struct {
	name string
	text string
}

// readInputs reads the files named in args, or stdin when there are none
// or the name is "-".
func readInputs(stdin io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var result []input
	for _, name := range args {
		var buf []byte
		var err error
		if name == "-" {
			buf, err = io.ReadAll(stdin)
		} else {
			buf, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		result = append(result, input{name: name, text: string(buf)})
	}
	return result, nil
}
