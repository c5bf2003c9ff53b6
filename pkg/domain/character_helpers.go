package domain

import "slices"

// Equal は2つの BusinessConcept を構造的に比較します。Keywords は順序も含めて比較します。
func (c BusinessConcept) Equal(other BusinessConcept) bool {
	return c.BusinessName == other.BusinessName &&
		c.BusinessType == other.BusinessType &&
		c.CharacterDescription == other.CharacterDescription &&
		c.SecretAgentName == other.SecretAgentName &&
		c.ColorPalette.Equal(other.ColorPalette) &&
		slices.Equal(c.Keywords, other.Keywords)
}

// KeywordList は Keywords の防御的コピーを返します。
func (c BusinessConcept) KeywordList() []string {
	return slices.Clone(c.Keywords)
}

// clone は呼び出し元とスライスを共有しないコピーを返します。
func (c BusinessConcept) clone() BusinessConcept {
	copied := c
	if c.Keywords != nil {
		copied.Keywords = make([]string, len(c.Keywords))
		copy(copied.Keywords, c.Keywords)
	}
	return copied
}
