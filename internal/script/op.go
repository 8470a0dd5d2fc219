package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Kind names one deque operation in a script.
type Kind string

// Supported operations. Those marked with an argument expect exactly one
// token after the operation name.
const (
	PushFront Kind = "push_front" // argument: value
	PushBack  Kind = "push_back"  // argument: value
	PopFront  Kind = "pop_front"
	PopBack   Kind = "pop_back"
	Get       Kind = "get" // argument: index
	Size      Kind = "size"
	Empty     Kind = "empty"
	Print     Kind = "print"
	Max       Kind = "max"
	Clear     Kind = "clear"
)

// Op is a single parsed script line.
type Op struct {
	Kind  Kind
	Value string
	Index int
	Line  int
}

func (o Op) String() string {
	switch o.Kind {
	case PushFront, PushBack:
		return fmt.Sprintf("%s %s", o.Kind, o.Value)
	case Get:
		return fmt.Sprintf("%s %d", o.Kind, o.Index)
	default:
		return string(o.Kind)
	}
}

// Parse reads one operation per line. Blank lines and lines starting with #
// are skipped. All malformed lines are reported together.
func Parse(r io.Reader) ([]Op, error) {

	var (
		ops  []Op
		errs *multierror.Error
	)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		op, err := parseLine(text)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		op.Line = line
		ops = append(ops, op)
	}
	err := scanner.Err()
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("could not read script: %w", err))
	}

	err = errs.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	return ops, nil
}

func parseLine(text string) (Op, error) {
	fields := strings.Fields(text)
	op := Op{Kind: Kind(fields[0])}
	args := fields[1:]

	switch op.Kind {
	case PushFront, PushBack:
		if len(args) != 1 {
			return Op{}, fmt.Errorf("%s takes one value, got %d: %w", op.Kind, len(args), ErrInvalidArguments)
		}
		op.Value = args[0]

	case Get:
		if len(args) != 1 {
			return Op{}, fmt.Errorf("%s takes one index, got %d: %w", op.Kind, len(args), ErrInvalidArguments)
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return Op{}, fmt.Errorf("could not parse index (%s): %w", args[0], err)
		}
		op.Index = index

	case PopFront, PopBack, Size, Empty, Print, Max, Clear:
		if len(args) != 0 {
			return Op{}, fmt.Errorf("%s takes no arguments, got %d: %w", op.Kind, len(args), ErrInvalidArguments)
		}

	default:
		return Op{}, fmt.Errorf("%q: %w", fields[0], ErrUnknownOperation)
	}

	return op, nil
}
