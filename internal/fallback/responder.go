package fallback

import (
	"strings"
	"unicode"

	"quiz-terminal/internal/domain"
)

// Topic is the tag the responder assigns to a prompt.
type Topic string

const (
	TopicProgramming Topic = "programming"
	TopicFrameworks  Topic = "frameworks"
	TopicHistory     Topic = "history"
	TopicScience     Topic = "science"
	TopicGeography   Topic = "geography"
	TopicArt         Topic = "art"
	TopicSports      Topic = "sports"
	TopicMusic       Topic = "music"
	TopicCinema      Topic = "cinema"
	TopicLiterature  Topic = "literature"
	TopicTechnology  Topic = "technology"
	TopicGeneric     Topic = "generic"
)

type topicRule struct {
	topic    Topic
	keywords []string
}

// Rules are evaluated in order; the first rule with a matching keyword wins.
var topicRules = []topicRule{
	{TopicProgramming, []string{"programación", "typescript", "javascript"}},
	{TopicFrameworks, []string{"react", "framework"}},
	{TopicHistory, []string{"historia", "guerra", "imperio"}},
	{TopicScience, []string{"ciencia", "química", "física"}},
	{TopicGeography, []string{"geografía", "país", "capital"}},
	{TopicArt, []string{"arte", "pintura", "escultura"}},
	{TopicSports, []string{"deportes", "juego", "competencia"}},
	{TopicMusic, []string{"música", "instrumento", "compositor"}},
	{TopicCinema, []string{"cine", "película", "director"}},
	{TopicLiterature, []string{"literatura", "libro", "autor"}},
	{TopicTechnology, []string{"tecnología", "empresa", "dispositivo", "invento"}},
}

var topicTexts = map[Topic]string{
	TopicProgramming: "TypeScript es una excelente elección para el desarrollo moderno. Al agregar tipado estático a JavaScript, TypeScript ayuda a detectar errores en tiempo de compilación, mejora la productividad del desarrollador y facilita el mantenimiento de aplicaciones grandes. Su compatibilidad con JavaScript lo hace ideal para proyectos existentes.",
	TopicFrameworks:  "React se ha convertido en uno de los frameworks más populares debido a su enfoque basado en componentes y su virtual DOM. Permite crear interfaces de usuario interactivas y reutilizables. Su ecosistema robusto y la gran comunidad de desarrolladores lo hacen una excelente opción para proyectos web modernos.",
	TopicHistory:     "Los eventos históricos están interconectados y han moldeado el mundo actual. Comprender el contexto histórico nos ayuda a entender mejor las decisiones políticas, sociales y económicas de diferentes épocas. Cada civilización ha contribuido de manera única al desarrollo de la humanidad.",
	TopicScience:     "La ciencia nos permite comprender los principios fundamentales que rigen nuestro universo. Desde las partículas subatómicas hasta las galaxias distantes, cada descubrimiento científico amplía nuestro conocimiento y nos ayuda a desarrollar tecnologías que mejoran la vida humana.",
	TopicGeography:   "La geografía influye profundamente en la cultura, economía y desarrollo de las sociedades. La ubicación geográfica determina el clima, los recursos naturales disponibles y las rutas comerciales, factores que han sido cruciales en la formación de civilizaciones a lo largo de la historia.",
	TopicArt:         "El arte es una expresión fundamental de la experiencia humana que trasciende barreras culturales y temporales. Cada movimiento artístico refleja los valores, preocupaciones y aspiraciones de su época, creando un diálogo continuo entre el pasado y el presente.",
	TopicSports:      "Los deportes van más allá de la competencia física; representan valores como trabajo en equipo, perseverancia y fair play. Cada deporte tiene reglas específicas y estrategias únicas que han evolucionado a lo largo del tiempo para crear experiencias emocionantes tanto para atletas como para espectadores.",
	TopicMusic:       "La música es un lenguaje universal que conecta emociones y culturas. Cada género musical tiene características distintivas que reflejan su origen cultural y histórico. Los grandes compositores han creado obras que continúan inspirando a nuevas generaciones de músicos y oyentes.",
	TopicCinema:      "El cine es un arte que combina narrativa visual, actuación, música y efectos para crear experiencias inmersivas. Los grandes directores han revolucionado la forma de contar historias, utilizando técnicas cinematográficas innovadoras que han influenciado el medio para siempre.",
	TopicLiterature:  "La literatura nos permite explorar la condición humana a través de diferentes perspectivas y épocas. Los grandes autores han creado obras que trascienden su tiempo, ofreciendo una mirada profunda sobre la naturaleza humana, la sociedad y nuestro lugar en el mundo.",
	TopicTechnology:  "La tecnología avanza gracias a la combinación de investigación, ingeniería y visión empresarial. Muchos de los dispositivos que usamos a diario nacieron como experimentos y se transformaron en productos que cambiaron la forma en que trabajamos y nos comunicamos.",
	TopicGeneric:     "Este tema requiere un análisis detallado considerando múltiples factores. La comprensión profunda viene de conectar diferentes conceptos y ver cómo se relacionan entre sí. Es importante considerar el contexto histórico, cultural y científico para obtener una perspectiva completa.",
}

// Responder answers any prompt with a canned paragraph chosen by topic.
// It never fails and never returns empty text.
type Responder struct{}

func NewResponder() *Responder {
	return &Responder{}
}

// Classify returns the topic tag for prompt.
func (r *Responder) Classify(prompt string) Topic {
	words := tokenize(prompt)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if hasWordWithPrefix(words, kw) {
				return rule.topic
			}
		}
	}
	return TopicGeneric
}

// Respond returns the canned paragraph for the prompt's topic.
func (r *Responder) Respond(prompt string) string {
	return topicTexts[r.Classify(prompt)]
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hasWordWithPrefix matches whole words and their inflections ("película" matches "películas").
func hasWordWithPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

var _ domain.LocalResponder = (*Responder)(nil)
