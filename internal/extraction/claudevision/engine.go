// Package claudevision delegates extraction to a vision model: the
// screenshot goes out, structured JSON comes back, and the reply is parsed
// leniently then schema-checked before anything is trusted.
package claudevision

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Lestat2Lioncourt/discord-bot/internal/catalog"
	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
)

// reply mirrors the JSON shape requested in the prompt.
type reply struct {
	CharacterName  *string     `json:"character_name"`
	CharacterLevel *int        `json:"character_level"`
	Points         *int        `json:"points"`
	GlobalPower    *int        `json:"global_power"`
	Stats          *replyStats `json:"stats"`
	Equipment      []replyItem `json:"equipment"`
}

type replyStats struct {
	Agility   *int `json:"agility"`
	Endurance *int `json:"endurance"`
	Serve     *int `json:"serve"`
	Volley    *int `json:"volley"`
	Forehand  *int `json:"forehand"`
	Backhand  *int `json:"backhand"`
}

type replyItem struct {
	Slot  int     `json:"slot"`
	Name  *string `json:"name"`
	Level *int    `json:"level"`
}

type engine struct {
	client   Client
	resolver *catalog.Resolver
}

// NewEngine creates the delegated extraction engine.
func NewEngine(client Client, resolver *catalog.Resolver) extraction.Engine {
	return &engine{client: client, resolver: resolver}
}

func (e *engine) Name() string { return EngineName }

func (e *engine) Extract(ctx context.Context, image []byte) (*domain.ExtractionResult, error) {
	log := logger.FromContext(ctx)

	raw, err := e.client.Describe(ctx, image)
	if err != nil {
		return nil, err
	}

	var decoded reply
	if err := DecodeLenient(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	canonical, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if err := validateReply(canonical); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	result := e.toResult(&decoded)
	result.RawText = raw
	result.Confidence = extraction.Score(result)
	log.Info("extraction finished",
		"engine", EngineName,
		"confidence", result.Confidence)
	return result, nil
}

func (e *engine) toResult(r *reply) *domain.ExtractionResult {
	result := &domain.ExtractionResult{
		CharacterName:  r.CharacterName,
		CharacterLevel: r.CharacterLevel,
		TrophyPoints:   r.Points,
		GlobalPower:    r.GlobalPower,
	}
	if r.Stats != nil {
		result.Agility = r.Stats.Agility
		result.Endurance = r.Stats.Endurance
		result.Serve = r.Stats.Serve
		result.Volley = r.Stats.Volley
		result.Forehand = r.Stats.Forehand
		result.Backhand = r.Stats.Backhand
	}

	for _, item := range r.Equipment {
		if item.Slot < 1 || item.Slot > domain.SlotCount {
			continue
		}
		name := ""
		if item.Name != nil {
			name = *item.Name
			// The catalog corrects spelling but the model's slot wins; it
			// saw the actual screen layout.
			if match, ok := e.resolver.Resolve(name); ok {
				name = match.Name
			}
		}
		if name == "" && item.Level == nil {
			continue
		}
		result.Equipment = append(result.Equipment, domain.EquipmentItem{
			Slot:  item.Slot,
			Name:  name,
			Level: item.Level,
		})
	}
	return result
}
