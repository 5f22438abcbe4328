package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantLabel
	TypographyVariantMuted
	TypographyVariantBold
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// ColourSet is a semantic colour pairing. All colours are adaptive so the
// same theme reads on light and dark terminals.
//
//   - Base: background or brand colour
//   - OnBase: text that contrasts with Base
//   - Muted: subdued text or secondary surface
//   - Contrast: accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components. The Sidebar*
// slots mirror the sidebar design tokens (background, accent, border, ring).
type Palette struct {
	Primary        ColourSet
	Surface        ColourSet
	Overlay        ColourSet
	Sidebar        ColourSet
	SidebarAccent  ColourSet
	SidebarPrimary ColourSet
	SidebarBorder  ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary        PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface        PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteOverlay        PaletteSlot = func(p Palette) ColourSet { return p.Overlay }
	PaletteSidebar        PaletteSlot = func(p Palette) ColourSet { return p.Sidebar }
	PaletteSidebarAccent  PaletteSlot = func(p Palette) ColourSet { return p.SidebarAccent }
	PaletteSidebarPrimary PaletteSlot = func(p Palette) ColourSet { return p.SidebarPrimary }
	PaletteSidebarBorder  PaletteSlot = func(p Palette) ColourSet { return p.SidebarBorder }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains the text presets components draw with.
type TypographyScale struct {
	Base  lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies, so a
// theme can restyle a variant without touching component code.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Create it once and share it.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Padding    spacingTable
	Typography TypographyScale
	Variants   *VariantRegistry
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#18181b", "#fafafa"),
			OnBase:   ac("#fafafa", "#18181b"),
			Muted:    ac("#71717a", "#a1a1aa"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#09090b"),
			OnBase:   ac("#09090b", "#fafafa"),
			Muted:    ac("#71717a", "#a1a1aa"),
			Contrast: ac("#e4e4e7", "#27272a"),
		},
		Overlay: ColourSet{
			Base:     ac("#d4d4d8", "#000000"),
			OnBase:   ac("#09090b", "#fafafa"),
			Muted:    ac("#a1a1aa", "#52525b"),
			Contrast: ac("#18181b", "#fafafa"),
		},
		Sidebar: ColourSet{
			Base:     ac("#fafafa", "#18181b"),
			OnBase:   ac("#3f3f46", "#f4f4f5"),
			Muted:    ac("#71717a", "#a1a1aa"),
			Contrast: ac("#2563eb", "#3b82f6"),
		},
		SidebarAccent: ColourSet{
			Base:     ac("#f4f4f5", "#27272a"),
			OnBase:   ac("#18181b", "#f4f4f5"),
			Muted:    ac("#e4e4e7", "#3f3f46"),
			Contrast: ac("#18181b", "#fafafa"),
		},
		SidebarPrimary: ColourSet{
			Base:     ac("#18181b", "#1d4ed8"),
			OnBase:   ac("#fafafa", "#ffffff"),
			Muted:    ac("#3f3f46", "#1e40af"),
			Contrast: ac("#fafafa", "#ffffff"),
		},
		SidebarBorder: ColourSet{
			Base:     ac("#e5e7eb", "#27272a"),
			OnBase:   ac("#3f3f46", "#f4f4f5"),
			Muted:    ac("#d4d4d8", "#3f3f46"),
			Contrast: ac("#3b82f6", "#d4d4d8"),
		},
	}

	theme := Theme{
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Padding:    spacingTable{0, 1, 1, 2, 3},
		Typography: defaultTypography(palette),
		Variants:   NewVariantRegistry(),
	}
	registerMenuButtonVariants(theme.Variants)
	return theme
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Sidebar.OnBase)
	return TypographyScale{
		Base:  base,
		Title: base.Bold(true).Foreground(p.Surface.OnBase),
		Label: lipgloss.NewStyle().Foreground(p.Sidebar.Muted),
		Muted: lipgloss.NewStyle().Foreground(p.Surface.Muted).Faint(true),
		Bold:  base.Bold(true),
	}
}

// registerMenuButtonVariants populates menu button variant strategies.
func registerMenuButtonVariants(registry *VariantRegistry) {
	registry.Register(MenuButtonVariantDefault, NewCompositeStrategy(
		Foreground(PaletteSidebar),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(MenuButtonVariantOutline, NewCompositeStrategy(
		Foreground(PaletteSidebar),
		Background(PaletteSurface),
		PaddingX(SpacingSizeExtraSmall),
	))
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return lipgloss.HiddenBorder()
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingSizeCount {
		return 0
	}
	return theme.Padding[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantLabel:
		return theme.Typography.Label
	case TypographyVariantMuted:
		return theme.Typography.Muted
	case TypographyVariantBold:
		return theme.Typography.Bold
	default:
		return theme.Typography.Base
	}
}

// Background applies a semantic background colour with its matching foreground.
//
// Example:
//
//	header := NewHeader().WithAppliers(Background(PaletteSidebarAccent))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).OnBase)
	}
}

// Border applies a border style from the theme, coloured with the sidebar border slot.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant)).
			BorderForeground(theme.Palette.SidebarBorder.Base)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
