package input

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const (
	evKey = 0x01

	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2

	keyEsc = 1
)

var keyCodes = map[rune]uint16{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6, '6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'-': 12, '=': 13,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'[': 26, ']': 27,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38,
	';': 39, '\'': 40,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50,
	',': 51, '.': 52, '/': 53,
	' ': 57,
}

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// DeviceSource reads raw key events from an evdev device such as
// /dev/input/event3. Releases are real, unlike the terminal.
type DeviceSource struct {
	Path   string
	Keys   []rune
	Lanes  LaneMap
	Logger logrus.FieldLogger
}

func (s *DeviceSource) codes() map[uint16]rune {
	codes := map[uint16]rune{}
	for _, r := range s.Keys {
		if code, ok := keyCodes[unicode.ToLower(r)]; ok {
			codes[code] = r
		} else {
			s.Logger.WithField("key", string(r)).Warn("no evdev code for key")
		}
	}
	return codes
}

func (s *DeviceSource) Run(ctx context.Context, events chan<- Event) error {
	file, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	go func() {
		<-ctx.Done()
		file.Close()
	}()

	err = s.read(ctx, file, events)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *DeviceSource) read(ctx context.Context, r io.Reader, events chan<- Event) error {
	codes := s.codes()
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("input: unable to read keyboard input: %w", err)
		}
		if ev.Type != evKey || ev.Value == keyRepeated {
			continue
		}
		at := time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000)

		if ev.Code == keyEsc {
			if ev.Value == keyPressed && !send(ctx, events, Event{Quit: true, At: at}) {
				return nil
			}
			continue
		}
		key, ok := codes[ev.Code]
		if !ok {
			continue
		}
		lane, ok := s.Lanes(key)
		if !ok {
			continue
		}
		if !send(ctx, events, Event{Lane: lane, Pressed: ev.Value == keyPressed, At: at}) {
			return nil
		}
	}
}
