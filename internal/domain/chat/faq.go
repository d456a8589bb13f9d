package chat

// DefaultFallback is returned when no FAQ entry matches the message.
const DefaultFallback = "No entendí tu pregunta. Puedes consultar sobre precios, horarios, cómo visitar el salón o qué servicios incluye."

// DefaultEntries is the venue FAQ catalogue served by the widget.
var DefaultEntries = []Entry{
	{
		Keywords: []string{"hola", "buenas", "info", "información"},
		Answer:   "¡Hola! Soy el asistente virtual. ¿Cómo puedo ayudarte? Puedes preguntarme sobre precios, horarios, capacidad del salón o cómo visitarnos.",
	},
	{
		Keywords: []string{"precio", "costo", "valor", "sale", "alquilar", "cuánto"},
		Answer:   "El precio del alquiler varía según la fecha. Puedes ver el valor estimado para cada día disponible en nuestro calendario de reservas. ¡Te invitamos a consultarlo!",
	},
	{
		Keywords: []string{"incluye", "equipamiento", "juegos", "servicios", "trae"},
		Answer:   "El alquiler incluye el salón equipado con sillas y mesones, cocina completa (heladera, freezer), 4 baños, y para la diversión: mesa de pool, ping pong, metegol y videojuegos arcade.",
	},
	{
		Keywords: []string{"horario", "horas", "turno", "horarios", "duración", "noche", "nocturno", "fiestas", "fiesta"},
		Answer:   "El horario estándar de alquiler es de 11:00 a 20:00 hs. Si necesitas un horario nocturno, por favor contáctanos para consultar la disponibilidad.",
	},
	{
		Keywords: []string{"ver", "visitar", "conocer", "ir", "reunirnos", "lugar"},
		Answer:   "¡Claro que sí! Para coordinar una visita y que puedas conocer el salón, por favor contáctanos por WhatsApp. Encontrarás el enlace con el ícono de WhatsApp al final de la página.",
	},
	{
		Keywords: []string{"capacidad", "personas", "invitados", "cuántos", "entra", "entran"},
		Answer:   "El salón tiene una capacidad cómoda para aproximadamente 80 personas, combinando el espacio interior y el exterior.",
	},
	{
		Keywords: []string{"reservar", "seña", "proceso", "cómo", "pagar"},
		Answer:   "Para reservar, debes seleccionar una fecha disponible en nuestro calendario, aceptar los términos y condiciones y subir el comprobante de pago de la seña, que corresponde al 50% del valor total.",
	},
	{
		Keywords: []string{"cancelar", "cancelación", "devolución", "reembolso"},
		Answer:   "En caso de cancelación por parte del cliente, la seña no es reembolsable, tal como se establece en los términos y condiciones aceptados al momento de reservar.",
	},
	{
		Keywords: []string{"música", "sonido", "parlantes", "equipo", "dj"},
		Answer:   "Contamos con un equipo de música básico para ambientar. Para eventos más grandes o con DJ, recomendamos que traigas tu propio equipamiento de sonido profesional.",
	},
	{
		Keywords: []string{"estacionamiento", "cochera", "autos", "aparcar", "cocheras", "auto"},
		Answer:   "Sí, disponemos de cocheras privadas dentro del predio para tu comodidad y la de tus invitados.",
	},
	{
		Keywords: []string{"ubicación", "dirección", "dónde", "encuentra", "llegar", "queda", "ubicado", "ubicacion", "direccion"},
		Answer:   "Nos encontramos en Bolivar 1425, San Rafael, Mendoza. ¡Te esperamos!",
	},
	{
		Keywords: []string{"pileta", "piscina", "verano"},
		Answer:   "¡Sí! Contamos con una hermosa pileta que está habilitada durante la temporada de verano para que disfrutes al máximo tu evento.",
	},
	{
		Keywords: []string{"gracias", "ok", "genial", "dale"},
		Answer:   "¡De nada! Si tienes alguna otra consulta, no dudes en preguntar.",
	},
}
