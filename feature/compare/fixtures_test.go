package compare

import (
	"io"
	"strings"

	"rebar-check/feature/schedule/ifc"

	"github.com/gofiber/fiber/v2"
)

// leftCSV holds 1:4, 2:9 and 10:1.
const leftCSV = "Pos;Antal\n1;2\n1;2\n2;9\n10;1\nSumma;14\n"

// rightXML holds 1:4, 2:8 and 3:1.
const rightXML = `<?xml version="1.0" encoding="UTF-8"?>
<B2aReport>
  <B2aPageRow><Litt>1</Litt><NoGrps>2</NoGrps><NoStpGrp>2</NoStpGrp></B2aPageRow>
  <B2aPageRow><Litt>2</Litt><NoGrps>1</NoGrps><NoStpGrp>8</NoStpGrp></B2aPageRow>
  <B2aPageRow><Litt>3</Litt><NoGrps>1</NoGrps><NoStpGrp>1</NoStpGrp></B2aPageRow>
</B2aReport>`

// teklaIFC holds one bar group with mark 1 and 4 bars.
const teklaIFC = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION((''),'2;1');
FILE_NAME('m.ifc','',(''),(''),'','Tekla Structures','');
FILE_SCHEMA(('IFC2X3'));
ENDSEC;
DATA;
#1=IFCAPPLICATION($,'2023','Tekla Structures','TS');
#10=IFCREINFORCINGBAR('bar1',$,$,$,$,$,$,$,$,$,$,$,$,$,$);
#20=IFCPROPERTYSET('ps1',$,'Tekla Reinforcement - Bending List',$,(#21,#22,#23,#24,#25));
#21=IFCPROPERTYSINGLEVALUE('Group position number',$,IFCLABEL('1'),$);
#22=IFCPROPERTYSINGLEVALUE('Number of bars in group',$,IFCINTEGER(4),$);
#23=IFCPROPERTYSINGLEVALUE('Grade',$,IFCLABEL('B500B'),$);
#24=IFCPROPERTYSINGLEVALUE('Size',$,IFCPOSITIVELENGTHMEASURE(12.),$);
#25=IFCPROPERTYSINGLEVALUE('Shape',$,IFCLABEL('11'),$);
#30=IFCRELDEFINESBYPROPERTIES('rel1',$,$,$,(#10),#20);
#11=IFCREINFORCINGBAR('bar2',$,$,$,$,$,$,$,$,$,$,$,$,$,$);
ENDSEC;
END-ISO-10303-21;
`

// staticMappings serves one mapping to every request.
type staticMappings struct {
	mapping ifc.Mapping
	err     error
}

func (s staticMappings) Mapping(*fiber.Ctx) (ifc.Mapping, error) {
	return s.mapping, s.err
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
