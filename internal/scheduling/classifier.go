package scheduling

import (
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Descriptor текстовое описание услуги, по которому она классифицируется
type Descriptor struct {
	Name     string
	Title    string
	Category string
}

// Text склеивает непустые поля в порядке name, title, category
func (d Descriptor) Text() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Name, d.Title, d.Category} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// IsEmpty сообщает, что у описания нет ни одного непустого поля
func (d Descriptor) IsEmpty() bool {
	return d.Name == "" && d.Title == "" && d.Category == ""
}

// Describe строит описание услуги. Если у строки нет ни имени, ни категории,
// используются отображаемые данные из корзины.
func Describe(row domain.ServiceRow, item *domain.BasketItem) Descriptor {
	d := Descriptor{Name: row.Name, Title: row.Title, Category: row.Category}
	if d.IsEmpty() && item != nil {
		d = Descriptor{Name: item.DisplayName, Category: item.DisplayCategory}
	}
	return d
}

// Classifier решает, нужна ли пауза после услуги
type Classifier interface {
	RequiresGap(d Descriptor) bool
}

// KeywordClassifier считает услугу химической, если её описание содержит
// одно из ключевых слов (поиск подстроки без учета регистра)
type KeywordClassifier struct {
	Keywords []string // если пусто, используется domain.ChemicalKeywords
}

// RequiresGap реализует Classifier
func (c KeywordClassifier) RequiresGap(d Descriptor) bool {
	keywords := c.Keywords
	if len(keywords) == 0 {
		keywords = domain.ChemicalKeywords
	}
	return containsAny(strings.ToLower(d.Text()), keywords)
}

// IsChemical классифицирует услугу стандартным набором ключевых слов
func IsChemical(d Descriptor) bool {
	return KeywordClassifier{}.RequiresGap(d)
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
