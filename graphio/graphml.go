package graphio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trophiclab/foodweb/core"
)

// Sentinel errors for GraphML handling.
var (
	// ErrGraphNil is returned if a nil graph is passed to an encoder.
	ErrGraphNil = errors.New("graphio: graph is nil")

	// ErrMalformedGraphML is returned for undecodable or structurally
	// invalid documents.
	ErrMalformedGraphML = errors.New("graphio: malformed GraphML")
)

const (
	graphmlNS = "http://graphml.graphdrawing.org/xmlns"

	// nameAttr is the node attribute food-web archives store species
	// labels under.
	nameAttr = "name"

	// nameKeyID is the key id our encoder declares for nameAttr.
	nameKeyID = "d0"
)

// Wire types for the GraphML subset. Decoding matches by local element
// name, so namespaced and plain documents both parse.
type graphmlDoc struct {
	XMLName xml.Name  `xml:"graphml"`
	Xmlns   string    `xml:"xmlns,attr,omitempty"`
	Keys    []keyDecl `xml:"key"`
	Graphs  []graphEl `xml:"graph"`
}

type keyDecl struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr,omitempty"`
	AttrName string `xml:"attr.name,attr,omitempty"`
	AttrType string `xml:"attr.type,attr,omitempty"`
}

type graphEl struct {
	ID          string   `xml:"id,attr,omitempty"`
	EdgeDefault string   `xml:"edgedefault,attr,omitempty"`
	Nodes       []nodeEl `xml:"node"`
	Edges       []edgeEl `xml:"edge"`
}

type nodeEl struct {
	ID   string   `xml:"id,attr"`
	Data []dataEl `xml:"data"`
}

type dataEl struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type edgeEl struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// ReadGraphML decodes a food web from r.
//
// The returned graph allows self-loops and parallel edges so the
// cleaner sees the raw structure; vertex IDs are the resolved species
// labels. The returned map carries XML node id → resolved label for
// provenance.
//
// Steps:
//  1. Decode the document; any XML error → ErrMalformedGraphML.
//  2. Locate the node "name" key declaration, if any.
//  3. Declare vertices in document order, resolving each label from
//     its name datum (fallback: node id) and suffixing duplicates.
//  4. Add edges in document order so edge IDs mirror file order.
func ReadGraphML(r io.Reader) (*core.Graph, map[string]string, error) {
	var doc graphmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedGraphML, err)
	}
	if len(doc.Graphs) == 0 {
		return nil, nil, fmt.Errorf("%w: no <graph> element", ErrMalformedGraphML)
	}
	web := doc.Graphs[0]

	nameKey := ""
	for _, k := range doc.Keys {
		if (k.For == "node" || k.For == "") && k.AttrName == nameAttr {
			nameKey = k.ID
			break
		}
	}

	g := core.NewGraph(core.WithSelfLoops(), core.WithParallelEdges())
	names := make(map[string]string, len(web.Nodes))
	taken := make(map[string]bool, len(web.Nodes))

	for _, n := range web.Nodes {
		label := ""
		if nameKey != "" {
			for _, d := range n.Data {
				if d.Key == nameKey {
					label = strings.TrimSpace(d.Value)
					break
				}
			}
		}
		if label == "" {
			label = n.ID
		}
		if label == "" {
			return nil, nil, fmt.Errorf("%w: node without id or name", ErrMalformedGraphML)
		}

		resolved := label
		for i := 2; taken[resolved]; i++ {
			resolved = label + "_" + strconv.Itoa(i)
		}
		taken[resolved] = true

		if n.ID != "" {
			if _, dup := names[n.ID]; dup {
				return nil, nil, fmt.Errorf("%w: duplicate node id %q", ErrMalformedGraphML, n.ID)
			}
			names[n.ID] = resolved
		}
		if err := g.AddVertex(resolved); err != nil {
			return nil, nil, err
		}
	}

	for _, e := range web.Edges {
		from, ok := names[e.Source]
		if !ok {
			return nil, nil, fmt.Errorf("%w: edge source %q not declared", ErrMalformedGraphML, e.Source)
		}
		to, ok := names[e.Target]
		if !ok {
			return nil, nil, fmt.Errorf("%w: edge target %q not declared", ErrMalformedGraphML, e.Target)
		}
		if _, err := g.AddEdge(from, to); err != nil {
			return nil, nil, err
		}
	}

	return g, names, nil
}

// WriteGraphML encodes g to w as the same GraphML subset ReadGraphML
// accepts: sorted vertices, edges in creation order, a single string
// "name" attribute per node.
//
// names maps vertex ID → display name; missing or nil entries fall back
// to the vertex ID itself.
func WriteGraphML(w io.Writer, g *core.Graph, names map[string]string) error {
	if g == nil {
		return ErrGraphNil
	}

	web := graphEl{ID: "G", EdgeDefault: "directed"}
	for _, id := range g.Vertices() {
		name := names[id]
		if name == "" {
			name = id
		}
		web.Nodes = append(web.Nodes, nodeEl{
			ID:   id,
			Data: []dataEl{{Key: nameKeyID, Value: name}},
		})
	}
	for _, e := range core.InsertionOrder(g.Edges()) {
		web.Edges = append(web.Edges, edgeEl{Source: e.From, Target: e.To})
	}

	doc := graphmlDoc{
		Xmlns: graphmlNS,
		Keys: []keyDecl{{
			ID:       nameKeyID,
			For:      "node",
			AttrName: nameAttr,
			AttrType: "string",
		}},
		Graphs: []graphEl{web},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return err
	}
	return nil
}
