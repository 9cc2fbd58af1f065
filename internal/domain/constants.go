package domain

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeNPC    = "NPC"
	EntityTypeEnemy  = "ENEMY"
	EntityTypeItem   = "ITEM"
)

// Параметры восприятия по умолчанию
const (
	// PursuitRadius - дальше этого евклидова расстояния большинство
	// существ игнорируют игрока.
	PursuitRadius = 25
)
