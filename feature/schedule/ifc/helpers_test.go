package ifc

import (
	"fmt"
	"strings"
)

type testPset struct {
	name  string
	props [][2]string // property name, STEP value literal
}

type testBar struct {
	psets []testPset
}

// buildIFC writes a minimal IFC2X3 exchange file with one IfcApplication and the
// given reinforcing bars, each with its own property sets.
func buildIFC(app string, bars ...testBar) []byte {
	var b strings.Builder
	b.WriteString("ISO-10303-21;\nHEADER;\n")
	b.WriteString("FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');\n")
	fmt.Fprintf(&b, "FILE_NAME('model.ifc','2024-05-01T10:00:00',(''),(''),'exporter','%s','');\n", app)
	b.WriteString("FILE_SCHEMA(('IFC2X3'));\nENDSEC;\nDATA;\n")
	fmt.Fprintf(&b, "#1=IFCAPPLICATION(#2,'1.0','%s','%s');\n", app, app)
	b.WriteString("#2=IFCORGANIZATION($,'Vendor',$,$,$);\n")

	id := 100
	next := func() int { id++; return id }

	for i, bar := range bars {
		barID := next()
		fmt.Fprintf(&b, "#%d=IFCREINFORCINGBAR('bar%04d',$,'REBAR',$,$,$,$,$,$,12.,$,$,$,.MAIN.,$);\n", barID, i)
		for j, ps := range bar.psets {
			var refs []string
			for _, p := range ps.props {
				pid := next()
				fmt.Fprintf(&b, "#%d=IFCPROPERTYSINGLEVALUE('%s',$,%s,$);\n", pid, p[0], p[1])
				refs = append(refs, fmt.Sprintf("#%d", pid))
			}
			psID := next()
			fmt.Fprintf(&b, "#%d=IFCPROPERTYSET('ps%04d%02d',$,'%s',$,(%s));\n", psID, i, j, ps.name, strings.Join(refs, ","))
			fmt.Fprintf(&b, "#%d=IFCRELDEFINESBYPROPERTIES('rel%04d%02d',$,$,$,(#%d),#%d);\n", next(), i, j, barID, psID)
		}
	}

	b.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")
	return []byte(b.String())
}

const teklaPset = "Tekla Reinforcement - Bending List"

func label(s string) string { return fmt.Sprintf("IFCLABEL('%s')", s) }

func teklaBar(mark, quantity, grade, size, shape string) testBar {
	return testBar{psets: []testPset{{
		name: teklaPset,
		props: [][2]string{
			{"Group position number", mark},
			{"Number of bars in group", quantity},
			{"Grade", grade},
			{"Size", size},
			{"Shape", shape},
		},
	}}}
}

func revitBar(mark, quantity, grade, size, shape string) testBar {
	return testBar{psets: []testPset{
		{name: "Construction", props: [][2]string{{"Quantity", quantity}, {"Shape", shape}}},
		{name: "Dimensions", props: [][2]string{{"Bar Diameter", size}}},
		{name: "Identity Data", props: [][2]string{{"Rebar Number", mark}}},
		{name: "Materials and Finishes", props: [][2]string{{"Structural Material", grade}}},
	}}
}
