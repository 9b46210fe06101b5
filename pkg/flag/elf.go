package flag

import (
	"encoding/binary"
	stderrors "errors"
	"fmt"
)

// ErrEmptyFlag is returned when GenerateElfExecutable is asked to embed an
// empty flag value; an executable with no payload is never valid.
var ErrEmptyFlag = stderrors.New("flag: cannot synthesize executable for empty flag")

const (
	elfHeaderSize    = 64
	programHeaderSize = 56
	codeSize          = 45

	loadAddr  = 0x400000
	entryPoint = loadAddr + elfHeaderSize + programHeaderSize
	dataOffset = elfHeaderSize + programHeaderSize + codeSize
	dataAddr   = loadAddr + dataOffset
)

// GenerateElfExecutable hand-assembles a minimal statically-linked x86-64
// ELF executable that writes flag to stdout with no trailing newline and
// exits 0. The controller has no toolchain available at runtime, so the
// image is built byte-by-byte rather than compiled.
//
// Layout: 64-byte ELF header, 56-byte program header, 45-byte code segment,
// then the flag bytes appended verbatim as the data segment.
func GenerateElfExecutable(flagValue string) ([]byte, error) {
	flagBytes := []byte(flagValue)
	if len(flagBytes) == 0 {
		return nil, ErrEmptyFlag
	}

	fileSize := dataOffset + len(flagBytes)
	out := make([]byte, fileSize)

	writeElfHeader(out)
	writeProgramHeader(out[elfHeaderSize:], uint64(dataOffset+len(flagBytes)))
	writeCode(out[elfHeaderSize+programHeaderSize:], uint32(len(flagBytes)))
	copy(out[dataOffset:], flagBytes)

	return out, nil
}

func writeElfHeader(b []byte) {
	copy(b[0:4], []byte{0x7f, 'E', 'L', 'F'})
	b[4] = 2 // ELFCLASS64
	b[5] = 1 // ELFDATA2LSB
	b[6] = 1 // EV_CURRENT
	b[7] = 0 // ELFOSABI_SYSV
	// b[8..16] EI_ABIVERSION + padding, already zero

	binary.LittleEndian.PutUint16(b[16:18], 2)              // e_type = ET_EXEC
	binary.LittleEndian.PutUint16(b[18:20], 0x3e)            // e_machine = EM_X86_64
	binary.LittleEndian.PutUint32(b[20:24], 1)               // e_version
	binary.LittleEndian.PutUint64(b[24:32], uint64(entryPoint))
	binary.LittleEndian.PutUint64(b[32:40], uint64(elfHeaderSize)) // e_phoff
	binary.LittleEndian.PutUint64(b[40:48], 0)                     // e_shoff
	binary.LittleEndian.PutUint32(b[48:52], 0)                     // e_flags
	binary.LittleEndian.PutUint16(b[52:54], elfHeaderSize)         // e_ehsize
	binary.LittleEndian.PutUint16(b[54:56], programHeaderSize)     // e_phentsize
	binary.LittleEndian.PutUint16(b[56:58], 1)                     // e_phnum
	binary.LittleEndian.PutUint16(b[58:60], 0)                     // e_shentsize
	binary.LittleEndian.PutUint16(b[60:62], 0)                     // e_shnum
	binary.LittleEndian.PutUint16(b[62:64], 0)                     // e_shstrndx
}

func writeProgramHeader(b []byte, segSize uint64) {
	const (
		ptLoad = 1
		pfX    = 1
		pfR    = 4
	)
	binary.LittleEndian.PutUint32(b[0:4], ptLoad)
	binary.LittleEndian.PutUint32(b[4:8], pfR|pfX)
	binary.LittleEndian.PutUint64(b[8:16], 0) // p_offset
	binary.LittleEndian.PutUint64(b[16:24], uint64(loadAddr))
	binary.LittleEndian.PutUint64(b[24:32], uint64(loadAddr))
	binary.LittleEndian.PutUint64(b[32:40], segSize) // p_filesz
	binary.LittleEndian.PutUint64(b[40:48], segSize) // p_memsz
	binary.LittleEndian.PutUint64(b[48:56], 0x1000)  // p_align
}

// writeCode emits:
//
//	mov rax, 1              ; sys_write
//	mov rdi, 1              ; fd = stdout
//	movabs rsi, data_addr   ; buf
//	mov rdx, flagLen        ; count
//	syscall
//	mov rax, 60             ; sys_exit
//	xor rdi, rdi            ; status = 0
//	syscall
func writeCode(b []byte, flagLen uint32) {
	off := 0

	emitMovRegImm32 := func(modrm byte, imm32 uint32) {
		b[off] = 0x48
		b[off+1] = 0xc7
		b[off+2] = modrm
		binary.LittleEndian.PutUint32(b[off+3:off+7], imm32)
		off += 7
	}

	emitMovRegImm32(0xc0, 1) // mov rax, 1
	emitMovRegImm32(0xc7, 1) // mov rdi, 1

	b[off] = 0x48
	b[off+1] = 0xbe
	binary.LittleEndian.PutUint64(b[off+2:off+10], uint64(dataAddr))
	off += 10 // movabs rsi, data_addr

	emitMovRegImm32(0xc2, flagLen) // mov rdx, flagLen

	b[off] = 0x0f
	b[off+1] = 0x05
	off += 2 // syscall

	emitMovRegImm32(0xc0, 60) // mov rax, 60

	b[off] = 0x48
	b[off+1] = 0x31
	b[off+2] = 0xff
	off += 3 // xor rdi, rdi

	b[off] = 0x0f
	b[off+1] = 0x05
	off += 2 // syscall

	if off != codeSize {
		panic(fmt.Sprintf("flag: code segment length drifted: got %d want %d", off, codeSize))
	}
}
