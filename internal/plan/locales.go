package plan

import "strings"

// SupportedLocales are the locales the template generator ships with.
// Anything else resolves to English.
var SupportedLocales = []string{"en", "fr", "es", "de"}

// ResolveLocale lowercases the code and falls back to "en" when unsupported.
func ResolveLocale(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range SupportedLocales {
		if code == l {
			return l
		}
	}
	return "en"
}

// lessonTemplate is one row of the fixed ten-lesson curriculum in one locale.
type lessonTemplate struct {
	Title       string
	Description string
	Category    string
	WhyDefault  string
}

// localeTable holds all locale-specific strings for the template generator.
type localeTable struct {
	IncomeLabels map[string]string
	Lessons      map[string]lessonTemplate
	WhyOverrides map[string]string // keyed by goal trigger: debt, invest, retire, house, business
	// MessageFormat interpolates (incomeLabel, goals).
	MessageFormat string
	// IncomeWhyFormat interpolates (incomeLabel, whyDefault) for lesson 1.
	IncomeWhyFormat string
}

// templateIDs is the fixed lesson ordering.
var templateIDs = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

// Difficulty and duration are locale-independent.
var (
	templateDifficulty = map[string]int{
		"1": 1, "2": 1, "3": 2, "4": 2, "5": 3, "6": 3, "7": 4, "8": 4, "9": 5, "10": 5,
	}
	templateMinutes = map[string]int{
		"1": 8, "2": 10, "3": 12, "4": 10, "5": 15, "6": 15, "7": 12, "8": 15, "9": 18, "10": 20,
	}
)

var locales = map[string]localeTable{
	"en": {
		IncomeLabels: map[string]string{
			"under_30k":      "under $30,000 per year",
			"30k_60k":        "$30,000-$60,000 per year",
			"60k_100k":       "$60,000-$100,000 per year",
			"100k_150k":      "$100,000-$150,000 per year",
			"over_150k":      "over $150,000 per year",
			"prefer_not_say": "not specified",
		},
		Lessons: map[string]lessonTemplate{
			"1":  {"Understanding Your Income", "Learn how to maximize and manage your income effectively", "Income Management", "Understanding income optimization is crucial for achieving your goals."},
			"2":  {"Building an Emergency Fund", "Create a safety net for unexpected expenses", "Savings", "Emergency funds are the foundation of financial security."},
			"3":  {"Budgeting Basics", "Master the 50/30/20 rule and track your spending", "Budgeting", "A solid budget helps you allocate resources toward your goals."},
			"4":  {"Understanding Credit Scores", "Learn what affects your credit and how to improve it", "Credit", "Good credit opens doors to better financial opportunities."},
			"5":  {"Debt Management Strategies", "Learn effective methods to pay off debt", "Debt", "Managing debt efficiently frees up money for savings and investments."},
			"6":  {"Introduction to Investing", "Understand stocks, bonds, and index funds", "Investing", "Investing is key to building long-term wealth."},
			"7":  {"Retirement Planning 101", "Start planning for your future today", "Retirement", "The earlier you start planning for retirement, the better."},
			"8":  {"Tax Optimization", "Learn legal ways to reduce your tax burden", "Taxes", "Understanding taxes helps you keep more of your earnings."},
			"9":  {"Real Estate Investing", "Explore property investment opportunities", "Investing", "Real estate can be a powerful wealth-building tool."},
			"10": {"Building Passive Income", "Create income streams that work for you", "Income Management", "Passive income provides financial freedom and security."},
		},
		WhyOverrides: map[string]string{
			"debt":     "This directly addresses your goal of managing debt.",
			"invest":   "This will help you achieve your investment goals.",
			"retire":   "Essential for achieving your retirement goals.",
			"house":    "This aligns with your real estate goals.",
			"business": "This supports your entrepreneurial aspirations.",
		},
		MessageFormat:   "Based on your income range (%s) and goals (%s), we've created a personalized learning path to help you achieve financial success.",
		IncomeWhyFormat: "With an income %s, %s",
	},
	"fr": {
		IncomeLabels: map[string]string{
			"under_30k":      "moins de 30 000 $ par an",
			"30k_60k":        "30 000 $-60 000 $ par an",
			"60k_100k":       "60 000 $-100 000 $ par an",
			"100k_150k":      "100 000 $-150 000 $ par an",
			"over_150k":      "plus de 150 000 $ par an",
			"prefer_not_say": "non spécifié",
		},
		Lessons: map[string]lessonTemplate{
			"1":  {"Comprendre vos revenus", "Apprenez à maximiser et gérer efficacement vos revenus", "Gestion des revenus", "Comprendre l'optimisation des revenus est crucial pour atteindre vos objectifs."},
			"2":  {"Construire un fonds d'urgence", "Créez un filet de sécurité pour les dépenses imprévues", "Épargne", "Les fonds d'urgence sont la base de la sécurité financière."},
			"3":  {"Notions de base du budget", "Maîtrisez la règle 50/30/20 et suivez vos dépenses", "Budgétisation", "Un budget solide vous aide à allouer des ressources vers vos objectifs."},
			"4":  {"Comprendre les scores de crédit", "Apprenez ce qui affecte votre crédit et comment l'améliorer", "Crédit", "Un bon crédit ouvre des opportunités financières."},
			"5":  {"Stratégies de gestion de la dette", "Apprenez des méthodes efficaces pour rembourser la dette", "Dette", "Gérer la dette efficacement libère de l'argent pour l'épargne et l'investissement."},
			"6":  {"Introduction à l'investissement", "Comprendre actions, obligations et fonds indiciels", "Investissement", "L'investissement est essentiel pour construire la richesse à long terme."},
			"7":  {"Planification de la retraite 101", "Commencez à planifier votre avenir dès aujourd'hui", "Retraite", "Plus vous commencez tôt la planification de la retraite, mieux c'est."},
			"8":  {"Optimisation fiscale", "Apprenez des moyens légaux de réduire votre charge fiscale", "Impôts", "Comprendre les impôts vous aide à conserver davantage de vos revenus."},
			"9":  {"Investissement immobilier", "Explorez les opportunités d'investissement immobilier", "Investissement", "L'immobilier peut être un outil puissant de création de richesse."},
			"10": {"Créer des revenus passifs", "Créez des sources de revenus qui travaillent pour vous", "Gestion des revenus", "Les revenus passifs offrent liberté et sécurité financières."},
		},
		WhyOverrides: map[string]string{
			"debt":     "Cela répond directement à votre objectif de gestion de la dette.",
			"invest":   "Cela vous aidera à atteindre vos objectifs d'investissement.",
			"retire":   "Essentiel pour atteindre vos objectifs de retraite.",
			"house":    "Cela correspond à vos objectifs immobiliers.",
			"business": "Cela soutient vos aspirations entrepreneuriales.",
		},
		MessageFormat:   "En fonction de votre tranche de revenus (%s) et de vos objectifs (%s), nous avons créé un parcours d'apprentissage personnalisé pour vous aider à réussir financièrement.",
		IncomeWhyFormat: "Avec un revenu %s, %s",
	},
	"es": {
		IncomeLabels: map[string]string{
			"under_30k":      "menos de $30,000 al año",
			"30k_60k":        "$30,000-$60,000 al año",
			"60k_100k":       "$60,000-$100,000 al año",
			"100k_150k":      "$100,000-$150,000 al año",
			"over_150k":      "más de $150,000 al año",
			"prefer_not_say": "no especificado",
		},
		Lessons: map[string]lessonTemplate{
			"1":  {"Comprender sus ingresos", "Aprenda a maximizar y gestionar sus ingresos de manera efectiva", "Gestión de ingresos", "Comprender la optimización de ingresos es crucial para alcanzar sus metas."},
			"2":  {"Crear un fondo de emergencia", "Cree una red de seguridad para gastos inesperados", "Ahorro", "Los fondos de emergencia son la base de la seguridad financiera."},
			"3":  {"Conceptos básicos de presupuestos", "Domine la regla 50/30/20 y registre sus gastos", "Presupuesto", "Un presupuesto sólido le ayuda a asignar recursos hacia sus metas."},
			"4":  {"Comprender puntajes de crédito", "Aprenda qué afecta su crédito y cómo mejorarlo", "Crédito", "Un buen crédito abre puertas a mejores oportunidades financieras."},
			"5":  {"Estrategias de gestión de deuda", "Aprenda métodos efectivos para pagar deudas", "Deuda", "Gestionar la deuda eficientemente libera dinero para ahorro e inversión."},
			"6":  {"Introducción a la inversión", "Comprenda acciones, bonos y fondos indexados", "Inversión", "Invertir es clave para construir riqueza a largo plazo."},
			"7":  {"Planificación de jubilación 101", "Comience a planificar su futuro hoy", "Jubilación", "Cuanto antes empiece a planificar la jubilación, mejor."},
			"8":  {"Optimización fiscal", "Aprenda formas legales de reducir su carga fiscal", "Impuestos", "Entender los impuestos le ayuda a conservar más de sus ingresos."},
			"9":  {"Inversión en bienes raíces", "Explore oportunidades de inversión en propiedades", "Inversión", "Los bienes raíces pueden ser una poderosa herramienta para crear riqueza."},
			"10": {"Construir ingresos pasivos", "Cree fuentes de ingresos que trabajen para usted", "Gestión de ingresos", "Los ingresos pasivos brindan libertad y seguridad financiera."},
		},
		WhyOverrides: map[string]string{
			"debt":     "Esto aborda directamente su objetivo de gestionar la deuda.",
			"invest":   "Esto le ayudará a lograr sus objetivos de inversión.",
			"retire":   "Es esencial para alcanzar sus objetivos de jubilación.",
			"house":    "Esto se alinea con sus objetivos inmobiliarios.",
			"business": "Esto respalda sus aspiraciones empresariales.",
		},
		MessageFormat:   "Según su rango de ingresos (%s) y sus objetivos (%s), hemos creado una ruta de aprendizaje personalizada para ayudarle a alcanzar el éxito financiero.",
		IncomeWhyFormat: "Con un ingreso %s, %s",
	},
	"de": {
		IncomeLabels: map[string]string{
			"under_30k":      "unter $30.000 pro Jahr",
			"30k_60k":        "$30.000-$60.000 pro Jahr",
			"60k_100k":       "$60.000-$100.000 pro Jahr",
			"100k_150k":      "$100.000-$150.000 pro Jahr",
			"over_150k":      "über $150.000 pro Jahr",
			"prefer_not_say": "nicht angegeben",
		},
		Lessons: map[string]lessonTemplate{
			"1":  {"Ihr Einkommen verstehen", "Lernen Sie, wie Sie Ihr Einkommen effektiv maximieren und verwalten", "Einkommensverwaltung", "Das Verständnis der Einkommensoptimierung ist entscheidend, um Ihre Ziele zu erreichen."},
			"2":  {"Aufbau eines Notfallfonds", "Erstellen Sie ein Sicherheitsnetz für unerwartete Ausgaben", "Sparen", "Notfallfonds sind die Grundlage finanzieller Sicherheit."},
			"3":  {"Budget-Grundlagen", "Meistern Sie die 50/30/20-Regel und verfolgen Sie Ihre Ausgaben", "Budgetierung", "Ein solides Budget hilft Ihnen, Mittel effektiv zuzuweisen."},
			"4":  {"Kreditwürdigkeit verstehen", "Erfahren Sie, was Ihre Kreditwürdigkeit beeinflusst und wie Sie sie verbessern", "Kredit", "Gute Kreditwürdigkeit öffnet Türen zu besseren finanziellen Möglichkeiten."},
			"5":  {"Schuldenmanagement-Strategien", "Lernen Sie effektive Methoden zur Tilgung von Schulden", "Schulden", "Effizientes Schuldenmanagement schafft Geld für Ersparnisse und Investitionen frei."},
			"6":  {"Einführung in Investitionen", "Verstehen Sie Aktien, Anleihen und Indexfonds", "Investieren", "Investieren ist der Schlüssel zum langfristigen Vermögensaufbau."},
			"7":  {"Altersvorsorge 101", "Beginnen Sie noch heute mit der Planung Ihrer Zukunft", "Rente", "Je früher Sie mit der Altersvorsorge beginnen, desto besser."},
			"8":  {"Steueroptimierung", "Lernen Sie legale Wege, Ihre Steuerlast zu reduzieren", "Steuern", "Das Verständnis von Steuern hilft Ihnen, mehr von Ihrem Einkommen zu behalten."},
			"9":  {"Immobilieninvestitionen", "Erkunden Sie Immobilieninvestitionsmöglichkeiten", "Investieren", "Immobilien können ein mächtiges Instrument zum Vermögensaufbau sein."},
			"10": {"Aufbau passiver Einkünfte", "Schaffen Sie Einkommensströme, die für Sie arbeiten", "Einkommensverwaltung", "Passive Einkünfte bieten finanzielle Freiheit und Sicherheit."},
		},
		WhyOverrides: map[string]string{
			"debt":     "Dies behandelt direkt Ihr Ziel der Schuldenverwaltung.",
			"invest":   "Dies hilft Ihnen, Ihre Investitionsziele zu erreichen.",
			"retire":   "Wesentlich, um Ihre Rentenziele zu erreichen.",
			"house":    "Dies entspricht Ihren Immobilienzielen.",
			"business": "Dies unterstützt Ihre unternehmerischen Bestrebungen.",
		},
		MessageFormat:   "Basierend auf Ihrer Einkommensspanne (%s) und Ihren Zielen (%s) haben wir einen personalisierten Lernpfad erstellt, um Ihnen zum finanziellen Erfolg zu verhelfen.",
		IncomeWhyFormat: "Bei einem Einkommen von %s ist %s",
	},
}

// incomeLabel resolves the display label for an income range in the given
// table, treating unknown ranges as unspecified.
func (t localeTable) incomeLabel(incomeRange string) string {
	if label, ok := t.IncomeLabels[incomeRange]; ok {
		return label
	}
	return t.IncomeLabels["prefer_not_say"]
}
