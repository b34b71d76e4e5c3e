package i18n

import "golang.org/x/text/language"

var catalogs = map[language.Tag]map[string]string{
	language.Spanish: {
		"action.play_card_1":   "Jugar carta 1",
		"action.play_card_2":   "Jugar carta 2",
		"action.play_card_3":   "Jugar carta 3",
		"action.envido":        "Envido",
		"action.envido_envido": "Envido envido",
		"action.real_envido":   "Real envido",
		"action.falta_envido":  "Falta envido",
		"action.truco":         "Truco",
		"action.retruco":       "Retruco",
		"action.vale_cuatro":   "Vale cuatro",
		"action.quiero":        "Quiero",
		"action.no_quiero":     "No quiero",
		"action.ir_al_mazo":    "Ir al mazo",

		"suit.espada": "espada",
		"suit.basto":  "basto",
		"suit.oro":    "oro",
		"suit.copa":   "copa",
		"card.label":  "%d de %s",
		"seat.label":  "J%d",

		"truco.level.0":  "sin truco",
		"truco.level.1":  "truco",
		"truco.level.2":  "retruco",
		"truco.level.3":  "vale cuatro",
		"envido.level.0": "sin envido",
		"envido.level.1": "envido",
		"envido.level.2": "real envido",
		"envido.level.3": "falta envido",

		"table.title":    "Mesa",
		"table.empty":    "(sin cartas)",
		"hand.mine":      "Tu mano",
		"hand.opponent":  "Mano de %s",
		"hand.hidden":    "%d cartas ocultas",
		"status.score":   "Puntos: %s %d - %s %d",
		"status.trick":   "Ronda %d",
		"status.mano":    "Es mano: %s",
		"status.truco":   "Truco: %s",
		"status.envido":  "Envido: %s",
		"status.turn":    "Turno de %s",
		"status.pending": "%s espera respuesta",
		"event.action":   "%s: %s",
		"event.trick":    "Ronda %d: %s",
		"event.tie":      "parda",
		"event.hand":     "%s gana la mano y suma %d",
		"event.forfeit":  "%s se lleva la mano sin jugarla y suma %d",
		"event.match":    "%s gana la partida %d a %d",
		"event.rejected": "Acción rechazada: %v",
		"prompt.action":  "Elegí una acción",

		"summary.agent0":       "Agente J0: %s",
		"summary.agent1":       "Agente J1: %s",
		"summary.games":        "Partidas: %d",
		"summary.wins0":        "Victorias J0: %d",
		"summary.wins1":        "Victorias J1: %d",
		"summary.ties":         "Empates: %d",
		"summary.points0":      "Promedio puntos J0: %.2f",
		"summary.points1":      "Promedio puntos J1: %.2f",
		"summary.hands":        "Promedio manos jugadas: %.2f",
		"summary.hands0":       "Promedio manos ganadas J0: %.2f",
		"summary.hands1":       "Promedio manos ganadas J1: %.2f",
		"summary.winrate":      "Tasa de victoria J0: %.3f (IC 95%%: %.3f - %.3f)",
		"summary.saved":        "Resultados guardados en %s",
		"summary.saved_report": "Resumen guardado en %s",
		"simulate.running":     "Jugando %d partidas: %s contra %s",
	},
	language.English: {
		"action.play_card_1":   "Play card 1",
		"action.play_card_2":   "Play card 2",
		"action.play_card_3":   "Play card 3",
		"action.envido":        "Envido",
		"action.envido_envido": "Envido envido",
		"action.real_envido":   "Real envido",
		"action.falta_envido":  "Falta envido",
		"action.truco":         "Truco",
		"action.retruco":       "Retruco",
		"action.vale_cuatro":   "Vale cuatro",
		"action.quiero":        "Accept",
		"action.no_quiero":     "Decline",
		"action.ir_al_mazo":    "Fold",

		"suit.espada": "swords",
		"suit.basto":  "clubs",
		"suit.oro":    "coins",
		"suit.copa":   "cups",
		"card.label":  "%d of %s",
		"seat.label":  "P%d",

		"truco.level.0":  "no truco",
		"truco.level.1":  "truco",
		"truco.level.2":  "retruco",
		"truco.level.3":  "vale cuatro",
		"envido.level.0": "no envido",
		"envido.level.1": "envido",
		"envido.level.2": "real envido",
		"envido.level.3": "falta envido",

		"table.title":    "Table",
		"table.empty":    "(no cards)",
		"hand.mine":      "Your hand",
		"hand.opponent":  "%s's hand",
		"hand.hidden":    "%d hidden cards",
		"status.score":   "Score: %s %d - %s %d",
		"status.trick":   "Trick %d",
		"status.mano":    "Mano: %s",
		"status.truco":   "Truco: %s",
		"status.envido":  "Envido: %s",
		"status.turn":    "%s to act",
		"status.pending": "%s is waiting for an answer",
		"event.action":   "%s: %s",
		"event.trick":    "Trick %d: %s",
		"event.tie":      "tie",
		"event.hand":     "%s wins the hand and scores %d",
		"event.forfeit":  "%s takes the hand unplayed and scores %d",
		"event.match":    "%s wins the match %d to %d",
		"event.rejected": "Action rejected: %v",
		"prompt.action":  "Choose an action",

		"summary.agent0":       "Agent P0: %s",
		"summary.agent1":       "Agent P1: %s",
		"summary.games":        "Matches: %d",
		"summary.wins0":        "P0 wins: %d",
		"summary.wins1":        "P1 wins: %d",
		"summary.ties":         "Ties: %d",
		"summary.points0":      "Average points P0: %.2f",
		"summary.points1":      "Average points P1: %.2f",
		"summary.hands":        "Average hands played: %.2f",
		"summary.hands0":       "Average hands won P0: %.2f",
		"summary.hands1":       "Average hands won P1: %.2f",
		"summary.winrate":      "P0 win rate: %.3f (95%% CI: %.3f - %.3f)",
		"summary.saved":        "Results saved to %s",
		"summary.saved_report": "Summary saved to %s",
		"simulate.running":     "Playing %d matches: %s against %s",
	},
}
