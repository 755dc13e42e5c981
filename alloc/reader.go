package alloc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PlanReader reads an allocation plan from a line-oriented text stream,
// prompting on the writer as it goes. This backs the interactive `run`
// command: capacity, claim count, then name/demand/priority per claim.
type PlanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPlanReader wraps a reader/writer pair for interactive plan entry.
// Pass io.Discard as out to suppress prompts (e.g. piped input).
func NewPlanReader(in io.Reader, out io.Writer) *PlanReader {
	return &PlanReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *PlanReader) prompt(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *PlanReader) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *PlanReader) readFloat(label string) (float64, error) {
	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", label, err)
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", label, line, err)
	}
	return v, nil
}

func (p *PlanReader) readInt(label string) (int, error) {
	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", label, err)
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", label, line, err)
	}
	return v, nil
}

// ReadPlan prompts for and reads the total capacity, the claim count and
// one claim per count. A count <= 0 is not an error: it returns an empty
// claim list and the caller reports an empty allocation.
// Negative demand, priority or capacity is rejected.
func (p *PlanReader) ReadPlan() (capacity float64, claims []Claim, err error) {
	p.prompt("Total available bandwidth (e.g. 1000): ")
	capacity, err = p.readFloat("capacity")
	if err != nil {
		return 0, nil, err
	}
	if capacity < 0 {
		return 0, nil, fmt.Errorf("negative capacity %v", capacity)
	}

	p.prompt("Number of competing claims: ")
	count, err := p.readInt("claim count")
	if err != nil {
		return 0, nil, err
	}
	if count <= 0 {
		return capacity, nil, nil
	}

	claims = make([]Claim, 0, count)
	for i := 0; i < count; i++ {
		p.prompt("Claim #%d name: ", i+1)
		name, err := p.readLine()
		if err != nil {
			return 0, nil, fmt.Errorf("reading claim %d name: %w", i+1, err)
		}

		p.prompt("  demand: ")
		demand, err := p.readFloat("demand")
		if err != nil {
			return 0, nil, fmt.Errorf("claim %d: %w", i+1, err)
		}

		p.prompt("  priority: ")
		priority, err := p.readInt("priority")
		if err != nil {
			return 0, nil, fmt.Errorf("claim %d: %w", i+1, err)
		}

		c, err := NewClaim(name, demand, priority)
		if err != nil {
			return 0, nil, err
		}
		claims = append(claims, c)
	}
	return capacity, claims, nil
}
