package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

const bannerArt = `
  ██████╗██╗     ██╗   ██╗██████╗      ██████╗ ██████╗ ███╗   ███╗██████╗  █████╗ ███████╗███████╗
 ██╔════╝██║     ██║   ██║██╔══██╗    ██╔════╝██╔═══██╗████╗ ████║██╔══██╗██╔══██╗██╔════╝██╔════╝
 ██║     ██║     ██║   ██║██████╔╝    ██║     ██║   ██║██╔████╔██║██████╔╝███████║███████╗███████╗
 ██║     ██║     ██║   ██║██╔══██╗    ██║     ██║   ██║██║╚██╔╝██║██╔═══╝ ██╔══██║╚════██║╚════██║
 ╚██████╗███████╗╚██████╔╝██████╔╝    ╚██████╗╚██████╔╝██║ ╚═╝ ██║██║     ██║  ██║███████║███████║
  ╚═════╝╚══════╝ ╚═════╝ ╚═════╝      ╚═════╝ ╚═════╝ ╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝╚══════╝╚══════╝`

const bannerCompact = "C L U B   C O M P A S S"

// RenderBanner returns the CLUB COMPASS banner styled in the primary
// color, with a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 100 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
