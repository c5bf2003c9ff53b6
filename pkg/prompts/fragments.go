package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-mascot-kit/pkg/domain"
)

// StylePreamble はすべての Variation に共通する画風の前置きです。
const StylePreamble = "soft white background color. doodle style"

// writeCanvasLayout はキャンバス設定からレイアウト指示ブロックを書き込みます。
// Variation によらず同じ文面で、canvas の値だけが差し込まれます。
func writeCanvasLayout(w *strings.Builder, canvas domain.CanvasRules) {
	w.WriteString("CANVAS LAYOUT:\n")
	fmt.Fprintf(w, "- Square %s aspect ratio, fixed 1:1 format (like an Instagram post).\n", canvas.Aspect)
	w.WriteString("- Character perfectly centered both vertically and horizontally.\n")
	fmt.Fprintf(w, "- Inner padding of about %dpx visual spacing, ensuring no part of the character touches the canvas edges.\n", canvas.PaddingPx)
	w.WriteString("- The background fills all remaining space evenly with a solid flat color (no frame or border).\n")
	w.WriteString("- The character stands clearly visible in the middle of the square, with a soft neutral drop shadow under their body.\n")
	w.WriteString("- Have background color by complementary color.")
}

// writeCharacterReference はキャラクターの参照情報を書き込みます。
// withAgentName が false の場合、エージェント名の行は出力しません。
func writeCharacterReference(w *strings.Builder, c domain.BusinessConcept, withAgentName bool) {
	fmt.Fprintf(w, "Character: %s\n", c.CharacterDescription)
	fmt.Fprintf(w, "Keywords: %s\n", strings.Join(c.Keywords, ", "))
	fmt.Fprintf(w, "Color Palette: %s, %s, %s", c.ColorPalette.Primary, c.ColorPalette.Secondary, c.ColorPalette.Accent)
	if withAgentName {
		fmt.Fprintf(w, "\nSecret Agent Name: %s", c.SecretAgentName)
	}
}

func writeBaseDirective(w *strings.Builder, _ domain.BusinessConcept) {
	w.WriteString("BASE REFERENCE: This is the foundational character design that will be used as reference for all variations. ")
	w.WriteString("Create a clear, detailed character that can be consistently referenced in future generations.")
}

func writeIconDirective(w *strings.Builder, c domain.BusinessConcept) {
	w.WriteString("ICON DESIGN: Super kawaii style, just the head only of the same character. ")
	w.WriteString("Clean flat color style with simplified details and bold readable outlines. ")
	fmt.Fprintf(w, "Add text %q below or beside the mascot in a rounded bold font that matches its personality with sans serif font. ", c.BusinessName)
	w.WriteString("No secret agent name.\n\n")
	fmt.Fprintf(w, "IMPORTANT: Use a solid opaque flat background color (%s or complementary color). ", c.ColorPalette.Accent)
	w.WriteString("Simple flat color only for icon design. Different facial expression from the base reference. Soft white background color.")
}

func writeStorytellingDirective(w *strings.Builder, c domain.BusinessConcept) {
	w.WriteString("STORYTELLING: Generate a 4-panel comic strip featuring the same character. ")
	fmt.Fprintf(w, "Each panel should have same size pixels, have background color, showing a cohesive storyline about %s. ", c.BusinessType)
	w.WriteString("Use the same character design but in different poses/actions and dialogs. ")
	w.WriteString("Panel 1: Character greetings customers \"Hello!\". ")
	fmt.Fprintf(w, "Panel 2: %s activity. ", c.BusinessType)
	w.WriteString("Panel 3: Customer interaction. Panel 4: Happy ending.")
}

func writeMascotDirective(w *strings.Builder, c domain.BusinessConcept) {
	w.WriteString("MASCOT: Generate a photorealistic and lively scene of a life-sized realistic character design mascot with a warm crowd of locals and tourists. ")
	w.WriteString("Based on the same character, but make it photorealistic and life-sized. ")
	fmt.Fprintf(w, "The character should feel welcoming and appropriate for %s. ", c.BusinessType)
	w.WriteString("Natural, authentic cultural interactions. No text description.")
}

func writeSecretAgentDirective(w *strings.Builder, c domain.BusinessConcept) {
	w.WriteString("SECRET AGENT: Transform the same character into a secret agent wearing a sleek black suit, black tie, white shirt, and iconic black sunglasses. ")
	w.WriteString("The character maintains their original personality and features but now looks professional and mysterious like Men in Black agents. ")
	w.WriteString("Full body image. ")
	fmt.Fprintf(w, "Add a subtle government badge or %q insignia. ", c.SecretAgentName)
	w.WriteString("The character should look serious and cool while retaining their kawaii charm. ")
	w.WriteString("Black suit should be well-fitted and professional. Soft white background color.")
}
