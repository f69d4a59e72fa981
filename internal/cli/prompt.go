package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/llehouerou/keyvault/internal/prefdialog"
)

const promptWidth = 72

// Confirm prints a bound dialog view and reads a y/N answer. Anything but
// y or yes, including end of input, is a negative answer.
func Confirm(in io.Reader, out io.Writer, v prefdialog.View) (bool, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, v.Title)
	if v.ExplanationText != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, wordwrap.String(v.ExplanationText, promptWidth))
	}
	fmt.Fprintf(out, "\n[y] %s  [N] %s: ", v.PositiveLabel, v.NegativeLabel)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
