package datastructure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

// WriteGraph. writes the graph as bzip2 compressed text:
//
//	<numVertices> <numEdges>
//	<id> <lat> <lon> <quoted name>   (numVertices lines)
//	<tail> <head>                    (numEdges lines)
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	if err := g.Encode(bz); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func (g *Graph) Encode(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for _, c := range g.cities {
		latF := strconv.FormatFloat(c.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(c.lon, 'f', -1, 64)
		fmt.Fprintf(w, "%d %s %s %s\n", c.id, latF, lonF, strconv.Quote(c.name))
	}

	g.ForOutEdges(func(tail, head Index) {
		fmt.Fprintf(w, "%d %d\n", tail, head)
	})

	return w.Flush()
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return DecodeGraph(bz)
}

// DecodeGraph. parses the text produced by Encode. the graph goes through GraphBuilder again, so a corrupted file
// can not produce self loops or routes to unknown cities.
func DecodeGraph(in io.Reader) (*Graph, error) {
	br := bufio.NewReader(in)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, fmt.Errorf("read graph header: %w", err)
	}

	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, fmt.Errorf("invalid graph header %q", line)
	}

	numVertices, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}

	numEdges, err := ParseIndex(tokens[1])
	if err != nil {
		return nil, err
	}

	builder := NewGraphBuilder()
	for i := Index(0); i < numVertices; i++ {
		vertexLine, err := util.ReadLine(br)
		if err != nil {
			return nil, fmt.Errorf("read city %d: %w", i, err)
		}
		name, lat, lon, err := parseCity(vertexLine, i)
		if err != nil {
			return nil, err
		}
		if _, err := builder.AddCity(name, lat, lon); err != nil {
			return nil, err
		}
	}

	for i := Index(0); i < numEdges; i++ {
		edgeLine, err := util.ReadLine(br)
		if err != nil {
			return nil, fmt.Errorf("read route %d: %w", i, err)
		}
		tokens := fields(edgeLine)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("invalid route line %q", edgeLine)
		}
		tail, err := ParseIndex(tokens[0])
		if err != nil {
			return nil, err
		}
		head, err := ParseIndex(tokens[1])
		if err != nil {
			return nil, err
		}
		if _, err := builder.AddRoute(tail, head); err != nil {
			return nil, err
		}
	}

	return builder.Build()
}

func parseCity(line string, want Index) (string, float64, float64, error) {
	tokens := strings.SplitN(line, " ", 4)
	if len(tokens) != 4 {
		return "", 0, 0, fmt.Errorf("invalid city line %q", line)
	}
	id, err := ParseIndex(tokens[0])
	if err != nil {
		return "", 0, 0, err
	}
	if id != want {
		return "", 0, 0, fmt.Errorf("city line %q out of order, expected id %d", line, want)
	}
	lat, err := util.StringToFloat64(tokens[1])
	if err != nil {
		return "", 0, 0, err
	}
	lon, err := util.StringToFloat64(tokens[2])
	if err != nil {
		return "", 0, 0, err
	}
	name, err := strconv.Unquote(tokens[3])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid city name in %q: %w", line, err)
	}
	return name, lat, lon, nil
}

func fields(s string) []string {
	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Index(val), nil
}
