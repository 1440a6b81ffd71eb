// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

const (
	wavFormatPCM        = 0x0001
	wavFormatExtensible = 0xfffe
)

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
)
