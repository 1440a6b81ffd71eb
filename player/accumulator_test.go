// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"testing"

	"github.com/ik5/audviz/audio"
)

func TestAccumulator_SizedOnce(t *testing.T) {
	t.Parallel()

	var acc Accumulator
	if acc.Allocated() || acc.Samples() != nil || acc.Capacity() != 0 {
		t.Fatal("zero Accumulator is not empty")
	}

	spec := audio.Spec{Rate: 22050, Channels: 2}
	f := audio.NewFrame(6, spec)
	f.Render(6)
	if err := acc.write(f); err != nil {
		t.Fatalf("write() error = %v", err)
	}

	big := audio.NewFrame(32, spec)
	big.Render(7)
	err := acc.write(big)
	if !errors.Is(err, audio.ErrCapacityExceeded) {
		t.Fatalf("write() error = %v, want ErrCapacityExceeded", err)
	}

	if acc.Capacity() != 12 {
		t.Errorf("Capacity() = %d, want 12", acc.Capacity())
	}
	if acc.Total() != 12 {
		t.Errorf("Total() = %d, want 12", acc.Total())
	}
	if got, _ := acc.Spec(); got != spec {
		t.Errorf("Spec() = %v, want %v", got, spec)
	}

	small := audio.NewFrame(32, spec)
	small.Render(2)
	if err := acc.write(small); err != nil {
		t.Fatalf("write() error = %v", err)
	}
	if acc.Total() != 16 || len(acc.Samples()) != 4 {
		t.Errorf("after small frame: total = %d, len = %d", acc.Total(), len(acc.Samples()))
	}
}

func TestAccumulator_ChannelMismatch(t *testing.T) {
	t.Parallel()

	var acc Accumulator
	mono := audio.NewFrame(4, audio.Spec{Rate: 8000, Channels: 1})
	mono.Render(4)
	if err := acc.write(mono); err != nil {
		t.Fatal(err)
	}

	stereo := audio.NewFrame(2, audio.Spec{Rate: 8000, Channels: 2})
	stereo.Render(2)
	if err := acc.write(stereo); !errors.Is(err, audio.ErrSpecMismatch) {
		t.Errorf("write() error = %v, want ErrSpecMismatch", err)
	}
	if acc.Total() != 4 {
		t.Errorf("Total() = %d, want 4", acc.Total())
	}
}
