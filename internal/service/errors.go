package service

import "errors"

var (
	// ErrLoadSubscribers - не удалось загрузить подписчиков; пакет прерывается
	ErrLoadSubscribers = errors.New("load subscribers failed")
	// ErrLoadFires - не удалось загрузить пожары; пакет прерывается
	ErrLoadFires = errors.New("load fires failed")
	// ErrChannelNotConfigured - у подписчика канал, для которого нет отправителя
	ErrChannelNotConfigured = errors.New("channel not configured")
	// ErrNotFound возвращается репозиториями, когда запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrInvalidSubscriber - подписчик без канала или с некорректными координатами
	ErrInvalidSubscriber = errors.New("invalid subscriber")
)
