// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blinklabs-io/arbitrary/cbor"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	archiveMagic   = "arbitrary-corpus"
	archiveVersion = 1
)

var (
	ErrUnknownFormat  = errors.New("unknown archive format")
	ErrInvalidArchive = errors.New("invalid archive")
)

// Format is the encoding of a corpus archive
type Format int

const (
	FormatCBOR Format = iota
	FormatMsgpack
	// FormatAuto detects the encoding when reading an archive
	FormatAuto
)

func (f Format) String() string {
	switch f {
	case FormatCBOR:
		return "cbor"
	case FormatMsgpack:
		return "msgpack"
	case FormatAuto:
		return "auto"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the Format with the given name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "cbor":
		return FormatCBOR, nil
	case "msgpack", "messagepack":
		return FormatMsgpack, nil
	case "auto", "":
		return FormatAuto, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// An archive is a header followed by Count entries, written as a sequence of
// top-level items
type archiveHeader struct {
	cbor.StructAsArray `msgpack:"-"`
	Magic              string `msgpack:"magic"`
	Version            uint   `msgpack:"version"`
	Count              uint   `msgpack:"count"`
}

func (h archiveHeader) validate() error {
	if h.Magic != archiveMagic {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidArchive, h.Magic)
	}
	if h.Version != archiveVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidArchive, h.Version)
	}
	return nil
}

// itemEncoder is satisfied by both the CBOR and msgpack encoders
type itemEncoder interface {
	Encode(any) error
}

// WriteArchive writes entries to w in the given format
func WriteArchive(w io.Writer, entries []Entry, format Format) error {
	var enc itemEncoder
	switch format {
	case FormatCBOR:
		cborEnc, err := cbor.NewEncoder(w)
		if err != nil {
			return err
		}
		enc = cborEnc
	case FormatMsgpack:
		enc = msgpack.NewEncoder(w)
	default:
		// FormatAuto only applies when reading
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	header := archiveHeader{
		Magic:   archiveMagic,
		Version: archiveVersion,
		Count:   uint(len(entries)),
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("write archive header: %w", err)
	}
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("write archive entry %s: %w", entry.Name, err)
		}
	}
	return nil
}

// DetectFormat reports the encoding of an archive from its header. A CBOR
// header is an array whose first element is the magic text string, while msgpack
// writes the header as a map.
func DetectFormat(data []byte) (Format, error) {
	if mt, ok := cbor.MajorType(data); !ok || mt != cbor.CborTypeArray {
		return detectMsgpack(data)
	}
	if mt, ok := cbor.MajorType(data[1:]); !ok || mt != cbor.CborTypeTextString {
		return detectMsgpack(data)
	}
	var header archiveHeader
	if _, err := cbor.Decode(data, &header); err != nil {
		return 0, fmt.Errorf("%w: header: %w", ErrInvalidArchive, err)
	}
	if err := header.validate(); err != nil {
		return 0, err
	}
	return FormatCBOR, nil
}

func detectMsgpack(data []byte) (Format, error) {
	var header archiveHeader
	if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&header); err != nil {
		return 0, fmt.Errorf("%w: unrecognized header: %w", ErrInvalidArchive, err)
	}
	if err := header.validate(); err != nil {
		return 0, err
	}
	return FormatMsgpack, nil
}

// ReadArchive reads an archive written by WriteArchive. With FormatAuto the
// encoding is taken from the archive header.
func ReadArchive(r io.Reader, format Format) ([]Entry, error) {
	switch format {
	case FormatCBOR, FormatMsgpack, FormatAuto:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if format == FormatAuto {
		if format, err = DetectFormat(data); err != nil {
			return nil, err
		}
	}
	if format == FormatMsgpack {
		return readMsgpackArchive(data)
	}
	return readCborArchive(data)
}

func readCborArchive(data []byte) ([]Entry, error) {
	dec, err := cbor.NewStreamDecoder(data)
	if err != nil {
		return nil, err
	}
	var header archiveHeader
	if _, _, err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidArchive, err)
	}
	if err := header.validate(); err != nil {
		return nil, err
	}
	ret := make([]Entry, 0, min(header.Count, 1024))
	for range header.Count {
		var entry Entry
		if _, _, err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidArchive, len(ret), err)
		}
		ret = append(ret, entry)
	}
	if !dec.EOF() {
		return nil, fmt.Errorf("%w: trailing data at offset %d", ErrInvalidArchive, dec.Position())
	}
	return ret, nil
}

func readMsgpackArchive(data []byte) ([]Entry, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	var header archiveHeader
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidArchive, err)
	}
	if err := header.validate(); err != nil {
		return nil, err
	}
	ret := make([]Entry, 0, min(header.Count, 1024))
	for range header.Count {
		var entry Entry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidArchive, len(ret), err)
		}
		ret = append(ret, entry)
	}
	return ret, nil
}
