package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/dsnet/compress/bzip2"
)

// WriteGraph serializes vertices and the raw edge list (not the derived weight
// columns, those are recomputed on load) as bzip2 compressed text.
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
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for vId := 0; vId < len(g.vertices); vId++ {
		v := g.vertices[vId]
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%d %s %s %d\n", v.id, latF, lonF, v.osmId)
	}

	for _, e := range g.outEdges {
		metersF := strconv.FormatFloat(e.meters, 'f', -1, 64)
		kphF := strconv.FormatFloat(e.kph, 'f', -1, 64)
		gradeF := strconv.FormatFloat(e.grade, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %s %s %s\n", e.tail, e.head, metersF, kphF, gradeF)
	}

	return w.Flush()
}

// ReadGraph loads a graph written by WriteGraph. grade may be NaN for edges
// where the importer had no elevation data.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	r := bufio.NewScanner(bz)
	r.Buffer(make([]byte, 1024*1024), 1024*1024)

	var n, m int
	if !r.Scan() {
		return nil, fmt.Errorf("graph file %s: missing header", filename)
	}
	if _, err := fmt.Sscanf(r.Text(), "%d %d", &n, &m); err != nil {
		return nil, fmt.Errorf("graph file %s: bad header: %w", filename, err)
	}

	vertices := make([]Vertex, n)
	for i := 0; i < n; i++ {
		if !r.Scan() {
			return nil, fmt.Errorf("graph file %s: truncated vertex section", filename)
		}
		var (
			id       Index
			lat, lon string
			osmId    int64
		)
		if _, err := fmt.Sscanf(r.Text(), "%d %s %s %d", &id, &lat, &lon, &osmId); err != nil {
			return nil, fmt.Errorf("graph file %s: bad vertex line %d: %w", filename, i, err)
		}
		// vertex ids must be 0..n-1 in file order, the csr addresses by id
		if id != Index(i) {
			return nil, fmt.Errorf("graph file %s: vertex line %d has id %d, want %d", filename, i, id, i)
		}
		latV, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return nil, err
		}
		lonV, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			return nil, err
		}
		vertices[i] = NewVertex(id, latV, lonV, osmId)
	}

	edges := make([]OutEdge, m)
	for i := 0; i < m; i++ {
		if !r.Scan() {
			return nil, fmt.Errorf("graph file %s: truncated edge section", filename)
		}
		var (
			tail, head         Index
			meters, kph, grade string
		)
		if _, err := fmt.Sscanf(r.Text(), "%d %d %s %s %s", &tail, &head, &meters, &kph, &grade); err != nil {
			return nil, fmt.Errorf("graph file %s: bad edge line %d: %w", filename, i, err)
		}
		if int(tail) >= n || int(head) >= n {
			return nil, fmt.Errorf("graph file %s: edge line %d references vertex %d-%d, graph has %d vertices",
				filename, i, tail, head, n)
		}
		metersV, err := strconv.ParseFloat(meters, 64)
		if err != nil {
			return nil, err
		}
		kphV, err := strconv.ParseFloat(kph, 64)
		if err != nil {
			return nil, err
		}
		gradeV, err := strconv.ParseFloat(grade, 64)
		if err != nil {
			return nil, err
		}
		edges[i] = NewOutEdge(tail, head, metersV, kphV, gradeV)
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	return NewGraph(vertices, edges), nil
}
