package content

import "github.com/aymaralearn/backend/internal/quiz"

// Authored Aymara quizzes, one per seeded lesson. Prompts stay in
// Spanish to match the course language of instruction.
func init() {
	Register("saludos", []quiz.Question{
		quiz.MultipleChoice{
			Text:    `¿Cómo se dice "Hola" en Aymara?`,
			Options: []string{"Kamisaraki", "Jikisiñkama", "Waliki", "Aski urukipan"},
			Correct: "Kamisaraki",
		},
		quiz.Completion{
			Text:    `Completa la frase: "______ urukipan" (Buenos días)`,
			Options: []string{"Aski", "Suma", "Wali", "Jach'a"},
			Correct: "Aski",
		},
		quiz.TrueFalse{
			Text:    `"Jikisiñkama" significa "Hasta luego".`,
			Correct: true,
		},
		quiz.Matching{
			Text: "Relaciona las palabras con su significado",
			Pairs: []quiz.Pair{
				{Left: "Kamisaraki", Right: "¿Cómo estás?"},
				{Left: "Waliki", Right: "Bien"},
				{Left: "Jikisiñkama", Right: "Hasta luego"},
			},
		},
	})

	Register("numeros", []quiz.Question{
		quiz.MultipleChoice{
			Text:    `¿Cómo se dice "uno" en Aymara?`,
			Options: []string{"Maya", "Paya", "Kimsa", "Pusi"},
			Correct: "Maya",
		},
		quiz.Completion{
			Text:    `Completa: "______ qullqi" (dos monedas)`,
			Options: []string{"Paya", "Maya", "Phisqa", "Suxta"},
			Correct: "Paya",
		},
		quiz.TrueFalse{
			Text:    `"Kimsa" significa "tres".`,
			Correct: true,
		},
		quiz.Matching{
			Text: "Relaciona los números con su valor",
			Pairs: []quiz.Pair{
				{Left: "Maya", Right: "1"},
				{Left: "Paya", Right: "2"},
				{Left: "Kimsa", Right: "3"},
				{Left: "Pusi", Right: "4"},
			},
		},
	})

	Register("familia", []quiz.Question{
		quiz.MultipleChoice{
			Text:    `¿Cómo se dice "madre" en Aymara?`,
			Options: []string{"Tayka", "Awki", "Jilata", "Kullaka"},
			Correct: "Tayka",
		},
		quiz.TrueFalse{
			Text:    `"Awki" significa "padre".`,
			Correct: true,
		},
		quiz.Completion{
			Text:    `Completa: "Jupax nayan ______ jawa" (Él es mi hermano)`,
			Options: []string{"jilata", "kullaka", "tayka", "awki"},
			Correct: "jilata",
		},
		quiz.Matching{
			Text: "Relaciona los parientes",
			Pairs: []quiz.Pair{
				{Left: "Tayka", Right: "Madre"},
				{Left: "Awki", Right: "Padre"},
				{Left: "Kullaka", Right: "Hermana"},
			},
		},
	})
}
