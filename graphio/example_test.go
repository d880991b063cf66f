package graphio_test

import (
	"fmt"
	"strings"

	"github.com/trophiclab/foodweb/graphio"
)

// ExampleReadGraphML decodes a two-species web with labeled nodes.
func ExampleReadGraphML() {
	doc := `<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <key id="d0" for="node" attr.name="name" attr.type="string"/>
  <graph edgedefault="directed">
    <node id="n0"><data key="d0">Plankton</data></node>
    <node id="n1"><data key="d0">Herring</data></node>
    <edge source="n0" target="n1"/>
  </graph>
</graphml>`

	g, _, err := graphio.ReadGraphML(strings.NewReader(doc))
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.HasEdge("Plankton", "Herring"))
	// Output:
	// [Herring Plankton]
	// true
}
