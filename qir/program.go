package qir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Program is the loaded program text together with its label table. It is
// read-only once built.
type Program struct {
	lines  []string
	insts  []Instruction
	labels map[string]int
}

// NewProgram decodes every line and builds the label table. A label defined
// twice is a parse error.
func NewProgram(lines []string) (*Program, error) {
	p := &Program{
		lines:  make([]string, len(lines)),
		insts:  make([]Instruction, len(lines)),
		labels: make(map[string]int),
	}
	copy(p.lines, lines)

	for i, line := range p.lines {
		inst := Decode(line)
		p.insts[i] = inst

		if inst.Kind != KindLabel {
			continue
		}

		if prev, ok := p.labels[inst.Label]; ok {
			return nil, fmt.Errorf("%w: label %q defined at line %d and line %d",
				ErrParse, inst.Label, prev+1, i+1)
		}
		p.labels[inst.Label] = i
	}

	return p, nil
}

// ReadLines splits the text read from r into lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return lines, nil
}

// ReadLinesFile reads the lines of the file at path.
func ReadLinesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return ReadLines(f)
}

// LoadProgram reads program text line by line from r.
func LoadProgram(r io.Reader) (*Program, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	return NewProgram(lines)
}

// LoadProgramFile reads the program text stored at path.
func LoadProgramFile(path string) (*Program, error) {
	lines, err := ReadLinesFile(path)
	if err != nil {
		return nil, err
	}

	return NewProgram(lines)
}

// ParseProgram builds a program from a string holding the whole text.
func ParseProgram(text string) (*Program, error) {
	return LoadProgram(strings.NewReader(text))
}

// Len returns the number of lines.
func (p *Program) Len() int {
	return len(p.lines)
}

// Line returns the raw text of line i.
func (p *Program) Line(i int) string {
	return p.lines[i]
}

// At returns the decoded instruction of line i.
func (p *Program) At(i int) Instruction {
	return p.insts[i]
}

// Resolve returns the line index where a label is defined.
func (p *Program) Resolve(label string) (int, error) {
	idx, ok := p.labels[label]
	if !ok {
		return 0, fmt.Errorf("%w: label %q not found", ErrParse, label)
	}

	return idx, nil
}

// HasLabel reports whether a label is defined.
func (p *Program) HasLabel(label string) bool {
	_, ok := p.labels[label]
	return ok
}
