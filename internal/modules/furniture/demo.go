package furniture

import (
	"errors"
	"io"

	"github.com/reusedev/pattern-hub/tools"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Order struct {
	Style    string
	Material string
	Color    string
}

func Demo(w io.Writer, orders []Order) error {
	tools.Println(w, "🏭 Abstract Factory Pattern Example - Furniture Manufacturing System")
	tools.Rule(w, "=", 60)

	m := NewManufacturer(w)
	m.ListStyles()
	tools.Println(w)

	upper := cases.Upper(language.English)
	for _, o := range orders {
		tools.Printf(w, "🏭 Creating %s furniture set...\n", o.Style)
		set, err := m.CreateSet(Style(o.Style), o.Material, o.Color)
		if errors.Is(err, ErrUnknownStyle) {
			tools.Println(w)
			continue
		}
		if err != nil {
			return err
		}
		tools.Println(w)
		tools.Printf(w, "📋 %s Furniture Set Details:\n", upper.String(o.Style))
		tools.Rule(w, "=", 40)

		tools.Printf(w, "📋 %s\n", set.Chair.Info())
		set.Chair.SitOn()
		tools.Printf(w, "📋 %s\n", set.Table.Info())
		set.Table.PutOn()
		tools.Printf(w, "📋 %s\n", set.Sofa.Info())
		set.Sofa.LieOn()
		tools.Println(w)
		tools.Println(w)
	}

	tools.Println(w, "✅ Abstract Factory Pattern example completed!")
	tools.Println(w)
	tools.Println(w, "💡 Design Pattern Key Points:")
	tools.Println(w, "  - Abstract Factory creates families of related objects")
	tools.Println(w, "  - Chair, Table, Sofa are abstract products")
	tools.Println(w, "  - Modern/Victorian variants are concrete products")
	tools.Println(w, "  - Factory is the abstract factory interface")
	tools.Println(w, "  - ModernFactory/VictorianFactory are concrete factories")
	tools.Println(w, "  - All products from same factory are guaranteed to be compatible")
	return nil
}
