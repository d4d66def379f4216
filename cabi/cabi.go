// Package main is the module's only cgo-touching file: a thin C ABI
// wrapper around the pure ensnorm pipeline, built with `go build
// -buildmode=c-archive` (or c-shared). Everything under package ensnorm
// stays pure Go and cgo-free; this is the one boundary that isn't.
//
// Modeled on the retrieval pack's cgo export style (see
// tetratelabs-wazero's wazerolib/lib.go: package main, `import "C"`, a
// no-op main, and //export-annotated functions working over raw pointers).
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/ensnorm/go-ensnorm/ensnorm"
	"github.com/ensnorm/go-ensnorm/internal/obslog"
)

func main() {}

const (
	codeOK               = 0
	codeAllocFailure     = -1
	codeProcessingError  = -3
	codeOutputTooSmall   = -4
	codeBeautifyTooSmall = -5
)

// writeOut copies s into the caller-supplied buffer (out, *outLen bytes
// available) if it fits, updating *outLen to the required size either way,
// per spec.md §6's return-code contract.
func writeOut(s string, out *C.char, outLen *C.size_t) int {
	needed := C.size_t(len(s))
	if out == nil || *outLen < needed {
		*outLen = needed
		return codeOutputTooSmall
	}
	if needed > 0 {
		dst := unsafe.Slice((*byte)(unsafe.Pointer(out)), int(needed))
		copy(dst, s)
	}
	*outLen = needed
	return codeOK
}

func readIn(in *C.char, inLen C.size_t) string {
	if inLen == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(in)), int(inLen)))
}

func classifyErr(err error) int {
	var e *ensnorm.Error
	if errors.As(err, &e) && e.Kind() == ensnorm.ErrKindOutOfMemory {
		return codeAllocFailure
	}
	return codeProcessingError
}

// ens_normalize implements spec.md §6's C ABI entry point of the same name.
//
//export ens_normalize
func ens_normalize(in *C.char, inLen C.size_t, out *C.char, outLen *C.size_t) C.int {
	input := readIn(in, inLen)
	result, err := ensnorm.Normalize(input)
	if err != nil {
		obslog.Error().Err(err).Msg("ens_normalize failed")
		return C.int(classifyErr(err))
	}
	return C.int(writeOut(result, out, outLen))
}

// ens_beautify implements spec.md §6's C ABI entry point of the same name.
//
//export ens_beautify
func ens_beautify(in *C.char, inLen C.size_t, out *C.char, outLen *C.size_t) C.int {
	input := readIn(in, inLen)
	result, err := ensnorm.Beautify(input)
	if err != nil {
		obslog.Error().Err(err).Msg("ens_beautify failed")
		return C.int(classifyErr(err))
	}
	return C.int(writeOut(result, out, outLen))
}

// ens_process implements spec.md §6's C ABI entry point of the same name.
// The normalized buffer is checked first: per the return-code contract, −4
// reports it undersized before the beautified buffer is even attempted.
//
//export ens_process
func ens_process(in *C.char, inLen C.size_t, norm *C.char, normLen *C.size_t, beau *C.char, beauLen *C.size_t) C.int {
	input := readIn(in, inLen)
	result, err := ensnorm.Process(input)
	if err != nil {
		obslog.Error().Err(err).Msg("ens_process failed")
		return C.int(classifyErr(err))
	}
	if rc := writeOut(result.Normalized, norm, normLen); rc != codeOK {
		return C.int(rc)
	}
	if rc := writeOut(result.Beautified, beau, beauLen); rc != codeOK {
		return C.int(codeBeautifyTooSmall)
	}
	return codeOK
}
