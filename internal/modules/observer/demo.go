package observer

import (
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

type Scenario struct {
	News     []string
	Detach   string
	Breaking string
}

func Demo(w io.Writer, s Scenario) error {
	tools.Println(w, "📰 Observer Pattern Example - News Publishing System")
	tools.Rule(w, "=", 50)

	agency := NewNewsAgency(w)
	cnn := NewNewsChannel(w, "cnn", "CNN")
	bbc := NewNewsChannel(w, "bbc", "BBC")

	tools.Println(w, "🔗 Attaching observers to news agency...")
	agency.Attach(cnn)
	agency.Attach(bbc)
	agency.Attach(NewNewsWebsite(w, "reuters", "Reuters", "https://reuters.com"))
	agency.Attach(NewMobileApp(w, "news_app", "Breaking News App", 1000000))
	tools.Println(w)

	for _, news := range s.News {
		agency.Publish(news)
		tools.Println(w)
	}

	if s.Detach != "" {
		tools.Printf(w, "🔗 Detaching %s from news agency...\n", s.Detach)
		if !agency.Detach(s.Detach) {
			tools.Printf(w, "❌ Unknown observer: %s\n", s.Detach)
		}
	}
	if s.Breaking != "" {
		agency.Publish(s.Breaking)
	}
	tools.Println(w)

	cnn.DisplayNews()
	bbc.DisplayNews()

	tools.Println(w)
	tools.Println(w, "✅ Observer Pattern example completed!")
	tools.Println(w)
	tools.Println(w, "💡 Design Pattern Key Points:")
	tools.Println(w, "  - NewsAgency is the Subject that maintains observers")
	tools.Println(w, "  - Observer interface defines the notification contract")
	tools.Println(w, "  - NewsChannel, NewsWebsite, MobileApp are concrete observers")
	tools.Println(w, "  - When news is published, all observers are automatically notified")
	tools.Println(w, "  - Observers can be dynamically attached and detached")
	tools.Println(w, "  - NewsChannel guards its received news with a sync.RWMutex")
	return nil
}
