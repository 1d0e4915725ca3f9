package mcts

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot exports the tree in the DOT format. Nodes that were never visited are left out.
func (t *MCTS) ToDot() (string, error) {
	t.Lock()
	defer t.Unlock()

	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.visits == 0 {
			continue
		}
		if err := tmpl.Execute(&buf, n); err != nil {
			return "", errors.WithStack(err)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		buf.Reset()
		if err := g.AddNode("G", fmt.Sprintf("%v", n.id), attrs); err != nil {
			return "", errors.Wrapf(err, "node %v", n.id)
		}
	}

	for i, children := range t.children {
		if t.nodes[i].visits == 0 {
			continue
		}
		kids := make([]naughty, len(children))
		copy(kids, children)
		sort.Sort(byMove{l: kids, t: t})
		for _, kid := range kids {
			if t.nodes[kid].visits == 0 {
				continue
			}
			if err := g.AddEdge(fmt.Sprintf("%v", i), fmt.Sprintf("%v", kid), true, nil); err != nil {
				return "", errors.Wrapf(err, "edge %v -> %v", i, kid)
			}
		}
	}
	return g.String(), nil
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node ID</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>Visits</TD><TD>{{.Visits}}</TD></TR>
<TR><TD>Q</TD><TD>{{printf "%.3f" .Q}}</TD></TR>
<TR><TD>Prior</TD><TD>{{printf "%.3f" .Prior}}</TD></TR>
<TR><TD>Value</TD><TD>{{printf "%.3f" .Value}}</TD></TR>
{{if .IsTerminal}}<TR><TD COLSPAN="2">Terminal</TD></TR>
{{end}}</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("name").Parse(tmplRaw))
}
