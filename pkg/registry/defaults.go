package registry

import "github.com/ticofinder/webtriage/models"

// defaultProfiles mirrors the production category table. Vocabularies are
// bilingual (English/Spanish) because the corpus mixes both. Order matters:
// it is the tie-break for domain matching and keyword scoring.
var defaultProfiles = []Profile{
	{
		Category:    models.CategoryRealEstate,
		Label:       "Propiedad / Real Estate",
		Icon:        "🏠",
		Description: "Extrae información de propiedades inmobiliarias: precio, ubicación, características físicas, amenidades.",
		Domains: []string{
			"brevitas.com",
			"coldwellbanker",
			"coldwellbankercostarica.com",
			"encuentra24.com",
			"century21",
			"remax",
			"properati",
			"mercadolibre",
			"olx",
		},
		Keywords: []string{
			"bedroom", "bedrooms", "habitaciones", "recámaras",
			"bathroom", "bathrooms", "baños",
			"sqft", "square feet", "m2", "m²", "metros cuadrados",
			"property", "propiedad", "casa", "house", "apartment", "apartamento",
			"for sale", "venta", "for rent", "alquiler",
			"lot size", "terreno", "land",
		},
	},
	{
		Category:    models.CategoryTour,
		Label:       "Tour / Actividad",
		Icon:        "🗺️",
		Description: "Extrae información de tours y actividades: tipo, duración, precio, qué incluye, nivel de dificultad.",
		Domains: []string{
			"viator.com",
			"getyourguide.com",
			"tripadvisor",
			"airbnbexperiences",
			"klook.com",
			"costarica.org",
		},
		Keywords: []string{
			"tour", "tours", "excursion", "excursiones", "excursions",
			"activity", "activities", "actividades",
			"adventure", "adventures", "aventura",
			"experience", "experiences", "experiencias",
			"duration", "duración",
			"guide", "guía", "guided",
			"included", "incluye", "includes",
			"pickup", "recogida",
			"participants", "participantes",
			"difficulty", "dificultad",
			"booking", "reserva", "book",
			"itinerary", "itinerario",
			"wildlife", "nature", "naturaleza",
			"zip line", "canopy", "rafting", "hiking",
		},
	},
	{
		Category:    models.CategoryRestaurant,
		Label:       "Restaurante / Comida",
		Icon:        "🍴",
		Description: "Extrae información de restaurantes: tipo de cocina, rango de precios, platillos destacados, horarios.",
		Domains: []string{
			"yelp.com",
			"zomato.com",
			"opentable.com",
			"tripadvisor",
			"happycow.net",
		},
		Keywords: []string{
			"restaurant", "restaurante",
			"menu", "menú",
			"cuisine", "cocina",
			"dish", "dishes", "platillos", "platos",
			"reservation", "reserva", "reservations",
			"dining", "comida",
			"chef",
			"hours", "horario",
			"price range", "rango de precio",
		},
	},
	{
		Category:    models.CategoryLocalTips,
		Label:       "Tips Locales / Consejos",
		Icon:        "💡",
		Description: "Extrae consejos prácticos: seguridad, costos, qué evitar, costumbres locales.",
		Domains: []string{
			"wikivoyage",
			"lonelyplanet",
			"nomadicmatt",
			"reddit.com/r/travel",
		},
		Keywords: []string{
			"tip", "tips", "consejos",
			"advice", "recomendación",
			"local", "locals",
			"avoid", "evitar",
			"safety", "seguridad",
			"scam", "estafa",
			"budget", "presupuesto",
			"money", "dinero",
			"customs", "costumbres",
		},
	},
	{
		Category:    models.CategoryTransportation,
		Label:       "Transporte",
		Icon:        "🚗",
		Description: "Extrae información de transporte: rutas, costos, horarios, opciones disponibles.",
		Domains: []string{
			"rome2rio",
			"uber.com",
			"lyft.com",
			"bus.com",
		},
		Keywords: []string{
			"transport", "transporte", "transportation",
			"bus", "taxi", "shuttle",
			"route", "ruta",
			"schedule", "horario",
			"fare", "tarifa", "cost", "costo",
			"frequency", "frecuencia",
			"pickup", "recogida",
			"dropoff", "destino",
			"rental", "alquiler",
		},
	},
}

// Default returns the compiled-in registry. Each call builds a fresh value
// so callers can never alias each other's table.
func Default() *Registry {
	profiles := make([]Profile, len(defaultProfiles))
	copy(profiles, defaultProfiles)
	r, err := New(profiles)
	if err != nil {
		// The compiled-in table is validated by tests; this cannot happen.
		panic(err)
	}
	return r
}
