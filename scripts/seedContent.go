package main

import (
	"log"

	"lexlingo/config"
	"lexlingo/database"
	"lexlingo/models/content"
)

// Seeds the Direito Civil starter content. Safe to re-run: it refuses to
// touch a database that already has tracks.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var trackCount int64
	db.Model(&content.Track{}).Count(&trackCount)
	if trackCount > 0 {
		log.Println("Content tables are not empty, nothing to seed.")
		return
	}

	track := content.Track{
		Title:       "Direito das Obrigações",
		Description: "Trilha introdutória de Direito Civil",
		OrderIndex:  0,
		IsPublished: true,
	}
	if err := db.Create(&track).Error; err != nil {
		log.Fatalf("Failed to seed track: %v", err)
	}

	topics := []content.Topic{
		{TrackID: track.ID, Title: "Fundamentos das Obrigações", Description: "Conceitos básicos e fontes das obrigações no Direito Civil", OrderIndex: 0, TotalLessons: 10},
		{TrackID: track.ID, Title: "Adimplemento e Extinção", Description: "Formas de cumprimento e extinção das obrigações", OrderIndex: 1, TotalLessons: 8},
		{TrackID: track.ID, Title: "Inadimplemento", Description: "Mora, perdas e danos, e cláusula penal", OrderIndex: 2, TotalLessons: 12},
	}
	if err := db.Create(&topics).Error; err != nil {
		log.Fatalf("Failed to seed topics: %v", err)
	}

	sections := []content.TheorySection{
		{TopicID: topics[0].ID, OrderIndex: 0, Title: "O que é uma obrigação?", Content: "A obrigação é o vínculo jurídico pelo qual o devedor se compromete a realizar uma prestação em favor do credor."},
		{TopicID: topics[0].ID, OrderIndex: 1, Title: "Fontes das obrigações", Content: "As principais fontes de obrigação no Direito Civil são os contratos, os atos ilícitos e a declaração de vontade unilateral."},
		{TopicID: topics[0].ID, OrderIndex: 2, Title: "Classificação das obrigações", Content: "As obrigações classificam-se em obrigações de dar, de fazer e de não fazer, conforme a natureza da prestação devida."},
	}
	if err := db.Create(&sections).Error; err != nil {
		log.Fatalf("Failed to seed theory sections: %v", err)
	}

	questions := []struct {
		prompt       string
		options      []string
		correctIndex int
		explanation  string
	}{
		{
			prompt: "Qual das opções abaixo NÃO é uma fonte de obrigação no Direito Civil?",
			options: []string{
				"Contrato",
				"Ato ilícito",
				"Declaração de vontade unilateral",
				"Sentença penal condenatória",
			},
			correctIndex: 3,
			explanation:  "A sentença penal condenatória não é considerada uma fonte de obrigação no Direito Civil. As principais fontes são: contratos, atos ilícitos e declaração de vontade unilateral.",
		},
		{
			prompt: "O que caracteriza uma obrigação de dar coisa certa?",
			options: []string{
				"Entrega de qualquer bem do mesmo gênero",
				"Prestação de um serviço específico",
				"Entrega de um bem determinado e individualizado",
				"Abstenção de determinado ato",
			},
			correctIndex: 2,
			explanation:  "A obrigação de dar coisa certa é caracterizada pela entrega de um bem determinado e individualizado, como um carro específico ou um imóvel determinado.",
		},
		{
			prompt: "O que é mora do devedor?",
			options: []string{
				"Impossibilidade de cumprir a obrigação",
				"Cumprimento da obrigação antes do prazo",
				"Descumprimento culposo da obrigação no tempo devido",
				"Recusa do credor em receber a prestação",
			},
			correctIndex: 2,
			explanation:  "A mora do devedor ocorre quando há descumprimento culposo da obrigação no tempo devido, ou seja, o devedor está em atraso no cumprimento de sua obrigação.",
		},
	}

	for i, q := range questions {
		row := content.Question{
			TopicID:      topics[0].ID,
			OrderIndex:   i,
			Prompt:       q.prompt,
			CorrectIndex: q.correctIndex,
			Explanation:  q.explanation,
		}
		if err := row.SetOptions(q.options); err != nil {
			log.Fatalf("Failed to encode question options: %v", err)
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("Failed to seed question: %v", err)
		}
	}

	log.Printf("Seeded %d track, %d topics, %d theory sections, %d questions.",
		1, len(topics), len(sections), len(questions))
}
