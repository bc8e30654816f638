package classifier

import "regexp"

// stripFalsePositives remove notações de RAM, tela e câmera que usam "+".
func stripFalsePositives(folded string) string {
	clean := folded
	for _, group := range [][]*regexp.Regexp{ramFalsePositives, displayFalsePositives, cameraFalsePositives} {
		for _, re := range group {
			clean = re.ReplaceAllString(clean, " ")
		}
	}
	return clean
}

// IsBundle decide se o título anuncia mais de um produto.
//
// É bundle quando há quantidade de acessórios ("2 pulseiras"), palavra de combo
// explícita ("kit", "brinde") ou um combinador (+, &, c/) que sobrevive à
// limpeza e não está cercado apenas de termos técnicos.
func IsBundle(title string) bool {
	folded := Fold(title)

	if reAccessoryQuantity.MatchString(folded) || reComboKeyword.MatchString(folded) {
		return true
	}

	clean := stripFalsePositives(folded)
	if !reBundleSignal.MatchString(clean) {
		return false
	}
	// sobrou um "+" mas só há especificação técnica em volta
	return !reTechDenylist.MatchString(clean)
}

// HasTechFalseFriend reports whether a camera or technical term sits right next to a
// combinator ("50mp + 2mp", "câm + selfie").
func HasTechFalseFriend(title string) bool {
	return reTechFalseFriend.MatchString(Fold(title))
}

// DetectBundle aplica as duas checagens em sequência. A segunda só consegue
// transformar true em false.
func DetectBundle(title string) bool {
	if !IsBundle(title) {
		return false
	}
	return !HasTechFalseFriend(title)
}
