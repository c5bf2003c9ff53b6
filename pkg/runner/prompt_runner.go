package runner

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/prompts"
)

// MascotPromptRunner はネットワークを使わずにプロンプトを出力します。
type MascotPromptRunner struct {
	designer *prompts.CharacterDesigner
	out      io.Writer
}

// NewMascotPromptRunner は MascotPromptRunner を生成します。
func NewMascotPromptRunner(designer *prompts.CharacterDesigner, out io.Writer) (*MascotPromptRunner, error) {
	if designer == nil {
		return nil, fmt.Errorf("designer は必須です")
	}
	if out == nil {
		return nil, fmt.Errorf("out は必須です")
	}
	return &MascotPromptRunner{designer: designer, out: out}, nil
}

// Run は指定された Variation のプロンプトを出力します。
func (pr *MascotPromptRunner) Run(concept domain.BusinessConcept, variation prompts.Variation) error {
	p, err := pr.designer.BuildPrompt(concept, variation)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pr.out, "# style: %s, size: %s\n%s\n", p.Style, p.Size, p.Text)
	return err
}

// List はすべての Variation と説明を一覧で出力します。
func (pr *MascotPromptRunner) List() error {
	tw := tabwriter.NewWriter(pr.out, 0, 4, 2, ' ', 0)
	for _, v := range prompts.AllVariations() {
		desc, err := prompts.VariationDescription(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", v, desc)
	}
	return tw.Flush()
}
