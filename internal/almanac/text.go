package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	seedsPrefix   = "seeds:"
	sectionSuffix = "map:"
)

// ParseText reads the text almanac layout. Rows are "dest src len";
// a blank line closes the current section.
func ParseText(r io.Reader) (*File, error) {
	var (
		f        File
		current  = -1
		sawSeeds bool
		lineNo   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			current = -1

		case strings.HasPrefix(line, seedsPrefix):
			if sawSeeds {
				return nil, &ParseError{Line: lineNo, Msg: "duplicate seeds line"}
			}

			seeds, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}

			f.Seeds = seeds
			sawSeeds = true
			current = -1

		case strings.HasSuffix(line, sectionSuffix):
			name := strings.TrimSpace(strings.TrimSuffix(line, sectionSuffix))
			if name == "" {
				return nil, &ParseError{Line: lineNo, Msg: "section header without a name"}
			}

			f.Sections = append(f.Sections, Section{Name: name})
			current = len(f.Sections) - 1

		default:
			if current < 0 {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("rule %q outside of a map section", line)}
			}

			values, err := parseNumbers(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}

			if len(values) != 3 {
				return nil, &ParseError{
					Line: lineNo,
					Msg:  fmt.Sprintf("rule needs 3 values (dest, src, len), got %d", len(values)),
				}
			}

			s := &f.Sections[current]
			s.Rules = append(s.Rules, RuleSpec{Dest: values[0], Src: values[1], Length: values[2]})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	return &f, nil
}

// WriteText writes f in the text layout. Section headers carry the
// categories, so a custom section name is replaced by "<from>-to-<to>".
// Sections that name only one category cannot be expressed and are an error.
func WriteText(w io.Writer, f *File) error {
	headers := make([]string, len(f.Sections))
	for i := range f.Sections {
		h, err := textHeader(&f.Sections[i], i)
		if err != nil {
			return err
		}

		headers[i] = h
	}

	bw := bufio.NewWriter(w)

	seeds := make([]string, len(f.Seeds))
	for i, s := range f.Seeds {
		seeds[i] = strconv.FormatUint(s, 10)
	}

	fmt.Fprintf(bw, "%s %s\n", seedsPrefix, strings.Join(seeds, " "))

	for i := range f.Sections {
		fmt.Fprintf(bw, "\n%s %s\n", headers[i], sectionSuffix)

		for _, r := range f.Sections[i].Rules {
			fmt.Fprintf(bw, "%d %d %d\n", r.Dest, r.Src, r.Length)
		}
	}

	return bw.Flush()
}

// textHeader returns the header a section is written under. The header
// must read back to the same categories.
func textHeader(s *Section, index int) (string, error) {
	switch {
	case s.From != "" && s.To != "":
		return sectionName(s.From, s.To), nil
	case s.From == "" && s.To == "" && s.Name != "":
		return s.Name, nil
	default:
		return "", fmt.Errorf("%s: text layout needs both categories or a name", s.Label(index))
	}
}
