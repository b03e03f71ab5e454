package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"productcatalog/catalog-service/internal/app/catalog/entity"
	"productcatalog/catalog-service/internal/app/catalog/util"
	"productcatalog/pkg/logger"

	"github.com/google/uuid"
)

func productEvent(eventType entity.EventType, product entity.Product) entity.CatalogEvent {
	price := product.Price
	return entity.CatalogEvent{
		EventType:  eventType,
		EntityID:   product.ID,
		Name:       product.Name,
		Price:      &price,
		CategoryID: product.CategoryID,
	}
}

// publishEvent отправляет событие каталога, ключ сообщения - ID сущности
// Ошибка только логируется: данные уже сохранены, событие не критично для запроса
func publishEvent(ctx context.Context, publisher util.MessagePublisher, event entity.CatalogEvent) {
	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().UTC()

	if err := sendEvent(ctx, publisher, event); err != nil {
		logger.Warn().
			Err(err).
			Str("event_type", string(event.EventType)).
			Uint("entity_id", event.EntityID).
			Msg("Failed to publish catalog event")
	}
}

func sendEvent(ctx context.Context, publisher util.MessagePublisher, event entity.CatalogEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	if err := publisher.PublishMessage(ctx, strconv.FormatUint(uint64(event.EntityID), 10), data); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}
