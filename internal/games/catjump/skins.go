package catjump

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/catjump/internal/core"
)

// DefaultSkinID is used when no skin was chosen or the chosen one is unknown.
const DefaultSkinID = "orange"

// Skin is a cosmetic cat variant.
type Skin struct {
	ID    string
	Name  string
	Color core.Color // Body colour
	Trim  core.Color // Ears and tail
}

var skins = []Skin{
	{"orange", "Orange Tabby", core.ColorOrange, core.ColorBrown},
	{"midnight", "Midnight", core.ColorDarkGray, core.ColorBrightBlue},
	{"snowball", "Snowball", core.ColorBrightWhite, core.ColorPink},
	{"caramel", "Caramel", core.ColorBrown, core.ColorCream},
	{"ashen", "Ashen", core.ColorGray, core.ColorDarkGray},
	{"tiger", "Tiger", core.ColorOrange, core.ColorDarkGray},
	{"smoky", "Smoky", core.ColorGray, core.ColorWhite},
	{"tuxedo", "Tuxedo", core.ColorDarkGray, core.ColorBrightWhite},
	{"siamese", "Siamese", core.ColorCream, core.ColorBrown},
	{"calico", "Calico", core.ColorBrightWhite, core.ColorOrange},
	{"chubby_orange", "Chubby Orange", core.ColorOrange, core.ColorYellow},
	{"fluffy_white", "Fluffy White", core.ColorWhite, core.ColorCream},
	{"panther", "Panther", core.ColorDarkGray, core.ColorYellow},
	{"fluffy_gray", "Fluffy Gray", core.ColorGray, core.ColorBrightWhite},
	{"chocolate", "Chocolate", core.ColorBrown, core.ColorDarkGray},
	{"cinnamon", "Cinnamon", core.ColorRed, core.ColorBrown},
	{"russian", "Russian Blue", core.ColorBlue, core.ColorGray},
	{"golden", "Golden", core.ColorGold, core.ColorOrange},
	{"spotted", "Spotted", core.ColorCream, core.ColorDarkGray},
	{"chubby_gray", "Chubby Gray", core.ColorGray, core.ColorPink},
	{"slim_cream", "Slim Cream", core.ColorCream, core.ColorOrange},
	{"fluffy_orange", "Fluffy Orange", core.ColorBrightYellow, core.ColorOrange},
	{"lavender", "Lavender", core.ColorLavender, core.ColorBrightMagenta},
	{"mint", "Mint", core.ColorBrightGreen, core.ColorGreen},
	{"sunset", "Sunset", core.ColorBrightRed, core.ColorGold},
	{"ocean", "Ocean", core.ColorCyan, core.ColorBlue},
	{"rosita", "Rosita", core.ColorPink, core.ColorBrightMagenta},
	{"galaxy", "Galaxy", core.ColorMagenta, core.ColorBrightCyan},
}

// Skins returns every available skin in display order.
func Skins() []Skin {
	out := make([]Skin, len(skins))
	copy(out, skins)
	return out
}

// LookupSkin finds a skin by id, case-insensitively.
func LookupSkin(id string) (Skin, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range skins {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

// SkinOrDefault returns the skin with the given id, falling back to orange.
func SkinOrDefault(id string) Skin {
	if s, ok := LookupSkin(id); ok {
		return s
	}
	s, _ := LookupSkin(DefaultSkinID)
	return s
}

// ValidateSkin returns an error naming the id when it is unknown.
func ValidateSkin(id string) error {
	if _, ok := LookupSkin(id); !ok {
		return fmt.Errorf("catjump: unknown skin %q", id)
	}
	return nil
}
