// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/audviz/formats/aiff"
)

// Example_errorHandling demonstrates rejecting a non AIFF input.
func Example_errorHandling() {
	_, err := aiff.Open(strings.NewReader("not an aiff file at all"))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not an AIFF file")
	}
	// Output:
	// not an AIFF file
}
