// Package card classifies lines of a Pamcrash input deck. A card is one
// logical line of the deck, identified by a fixed-width keyword prefix
// ("NODE  / ", "SHELL / ", ...). The term "keyword" comes from the solver
// itself and is common among FEM tools.
package card

// Keyword denotes the card type a line belongs to. It carries only the
// keyword, not subtypes, so e.g. all SHELL variants classify the same.
type Keyword int

const (
	// node cards
	Node Keyword = iota
	Cnode
	Mass
	Nsmas
	Nsmas2
	// element cards
	Solid
	Hexa20
	Pent15
	Penta6
	Tetr10
	Tetr4
	Bshel
	Tshel
	Shell
	Shel6
	Shel8
	Membr
	Beam
	Sprgbm
	Bar
	Spring
	Joint
	Kjoin
	Mtojnt
	Sphel
	Sphelo
	Gap
	Impma
	// link cards
	Elink
	// Comment marks a line starting with '#' or '$'. It has no keyword
	// prefix and never appears in the prefix table.
	Comment
)

var names = [...]string{
	Node:    "NODE",
	Cnode:   "CNODE",
	Mass:    "MASS",
	Nsmas:   "NSMAS",
	Nsmas2:  "NSMAS2",
	Solid:   "SOLID",
	Hexa20:  "HEXA20",
	Pent15:  "PENT15",
	Penta6:  "PENTA6",
	Tetr10:  "TETR10",
	Tetr4:   "TETR4",
	Bshel:   "BSHEL",
	Tshel:   "TSHEL",
	Shell:   "SHELL",
	Shel6:   "SHEL6",
	Shel8:   "SHEL8",
	Membr:   "MEMBR",
	Beam:    "BEAM",
	Sprgbm:  "SPRGBM",
	Bar:     "BAR",
	Spring:  "SPRING",
	Joint:   "JOINT",
	Kjoin:   "KJOIN",
	Mtojnt:  "MTOJNT",
	Sphel:   "SPHEL",
	Sphelo:  "SPHELO",
	Gap:     "GAP",
	Impma:   "IMPMA",
	Elink:   "ELINK",
	Comment: "COMMENT",
}

func (k Keyword) String() string {
	if k < 0 || int(k) >= len(names) {
		return "UNKNOWN"
	}
	return names[k]
}

// PrefixLen is the number of bytes a card keyword prefix occupies: the
// keyword padded with spaces to 6 bytes, a '/', and one trailing space.
const PrefixLen = 8

// prefixes maps the fixed 8-byte line prefix to its keyword. Matching is
// exact byte equality, no case folding, no partial matches.
var prefixes = map[string]Keyword{
	// node cards
	"NODE  / ": Node,
	"CNODE / ": Cnode,
	"MASS  / ": Mass,
	"NSMAS / ": Nsmas,
	"NSMAS2/ ": Nsmas2,
	// element cards
	"SOLID / ": Solid,
	"HEXA20/ ": Hexa20,
	"PENT15/ ": Pent15,
	"PENTA6/ ": Penta6,
	"TETR10/ ": Tetr10,
	"TETR4 / ": Tetr4,
	"BSHEL / ": Bshel,
	"TSHEL / ": Tshel,
	"SHELL / ": Shell,
	"SHEL6 / ": Shel6,
	"SHEL8 / ": Shel8,
	"MEMBR / ": Membr,
	"BEAM  / ": Beam,
	"SPRGBM/ ": Sprgbm,
	"BAR   / ": Bar,
	"SPRING/ ": Spring,
	"JOINT / ": Joint,
	"KJOIN / ": Kjoin,
	"MTOJNT/ ": Mtojnt,
	"SPHEL / ": Sphel,
	"SPHELO/ ": Sphelo,
	"GAP   / ": Gap,
	"IMPMA / ": Impma,
	// link cards
	"ELINK / ": Elink,
}

// Class is the classification of a single deck line: a specific card
// keyword, a comment, or unrecognized content.
type Class struct {
	kw    Keyword
	known bool
}

// Classify maps one line to its classification. It is total: lines that
// match no card prefix and carry no comment marker come back unrecognized,
// which is meaningful output rather than an error. Classification of a line
// never depends on surrounding lines.
func Classify(line string) Class {
	if len(line) >= PrefixLen {
		if kw, ok := prefixes[line[:PrefixLen]]; ok {
			return Class{kw: kw, known: true}
		}
	}
	if len(line) > 0 && (line[0] == '#' || line[0] == '$') {
		return Class{kw: Comment, known: true}
	}
	return Class{}
}

// Card returns the card keyword when the line is a card line, and false for
// comments and unrecognized lines.
func (c Class) Card() (Keyword, bool) {
	if !c.known || c.kw == Comment {
		return 0, false
	}
	return c.kw, true
}

func (c Class) IsComment() bool { return c.known && c.kw == Comment }

func (c Class) IsUnrecognized() bool { return !c.known }
