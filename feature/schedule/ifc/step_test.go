package ifc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModel = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');
FILE_NAME('x.ifc','2024-05-01T10:00:00',('Designer'),('Office'),'IfcOpenShell','Autodesk Revit 2023 (ENU)','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
/* comment spanning
   two lines */
DATA;
#1=IFCPROPERTYSINGLEVALUE('Bar''s mark',$,IFCLABEL('K\X2\00E4\X0\llare'),$);
#2=IFCPROPERTYSINGLEVALUE('Count',$,IFCCOUNTMEASURE(4.),$);
#3=IFCPROPERTYSET('g',$,'Pset',$,(#1,#2));
#4=(IFCLENGTHMEASURE(1.)IFCNAMEDUNIT(*,.LENGTHUNIT.));
#5=IFCREINFORCINGBAR('g5',$,$,$,$,$,$,$,$,1.2E1,-3,.T.,"0FF",$,.MAIN.);
ENDSEC;
END-ISO-10303-21;
`

func TestReadModel(t *testing.T) {
	m, err := ReadModel([]byte(sampleModel))
	require.NoError(t, err)

	assert.Equal(t, "IFC4", m.Schema)
	assert.Equal(t, "Autodesk Revit 2023 (ENU)", m.OriginatingSystem)
	assert.Equal(t, 5, m.Len())

	t.Run("EscapedStrings", func(t *testing.T) {
		prop, ok := m.Entity(1)
		require.True(t, ok)
		assert.Equal(t, "Bar's mark", prop.Text(0))
		assert.Equal(t, "Källare", prop.Arg(2).Native())
	})

	t.Run("TypedNumbers", func(t *testing.T) {
		prop, _ := m.Entity(2)
		assert.Equal(t, 4.0, prop.Arg(2).Native())
	})

	t.Run("References", func(t *testing.T) {
		pset, _ := m.Entity(3)
		assert.Equal(t, []int{1, 2}, pset.Arg(4).Refs())
		assert.Nil(t, pset.Arg(1).Refs())
	})

	t.Run("ComplexInstanceKeepsFirstRecord", func(t *testing.T) {
		e, ok := m.Entity(4)
		require.True(t, ok)
		assert.Equal(t, "IFCLENGTHMEASURE", e.Type)
	})

	t.Run("Literals", func(t *testing.T) {
		bars := m.ByType("IfcReinforcingBar")
		require.Len(t, bars, 1)
		bar := bars[0]

		assert.Equal(t, 14, bar.Line)
		assert.Equal(t, KindNumber, bar.Arg(9).Kind)
		assert.Equal(t, 12.0, bar.Arg(9).Native())
		assert.Equal(t, int64(-3), bar.Arg(10).Native())
		assert.Equal(t, true, bar.Arg(11).Native())
		assert.Equal(t, "0FF", bar.Arg(12).Native())
		assert.Equal(t, "MAIN", bar.Arg(14).Native())
		assert.Equal(t, KindNull, bar.Arg(99).Kind)
	})
}

func TestReadModel_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"NotStep", "<xml/>", 1},
		{"UnterminatedString", "ISO-10303-21;\nHEADER;\nENDSEC;\nDATA;\n#1=IFCLABEL('abc);\n", 5},
		{"MissingSemicolon", "ISO-10303-21;\nHEADER;\nENDSEC;\nDATA;\n#1=IFCWALL($)\n#2=IFCWALL($);\n", 6},
		{"DuplicateID", "ISO-10303-21;\nHEADER;\nENDSEC;\nDATA;\n#1=IFCWALL($);\n#1=IFCWALL($);\nENDSEC;\nEND-ISO-10303-21;\n", 6},
		{"Truncated", "ISO-10303-21;\nHEADER;\nENDSEC;\nDATA;\n#1=IFCWALL($);\n", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadModel([]byte(tt.data))
			require.Error(t, err)

			var serr *SyntaxError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, tt.line, serr.Line)
		})
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`plain`, "plain"},
		{`back\\slash`, `back\slash`},
		{`\S\e`, "å"},
		{`\PE\\S\T`, "д"},
		{`\X\C4`, "Ä"},
		{`\X2\00F600E4\X0\`, "öä"},
		{`\X4\0001F600\X0\`, "😀"},
		{`lone \ kept`, `lone \ kept`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := decodeString([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := decodeString([]byte(`\X2\00F\X0\`))
	assert.Error(t, err)
	_, err = decodeString([]byte(`\X2\00F6`))
	assert.Error(t, err)
}
