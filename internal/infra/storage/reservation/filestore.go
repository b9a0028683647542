package reservation

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Колонки CSV-файла. Формат унаследован от исходной системы: по строке на
// резервацию, у старых строк колонка machine может отсутствовать.
var csvHeader = []string{"room", "date", "slot", "machine"}

// FileStore хранилище резерваций в одном CSV-файле.
//
// Всё состояние держится в памяти под RWMutex; каждый коммит переписывает
// файл целиком через временный файл и rename, поэтому на диске всегда лежит
// либо старое, либо новое состояние и никогда промежуточное.
type FileStore struct {
	mu       sync.RWMutex
	path     string
	state    domain.Snapshot
	observer Observer
}

// NewFileStore открывает (или создает) CSV-файл и загружает состояние.
// Отсутствующий или пустой файл считается штатным первым запуском, а не
// ошибкой; нечитаемое содержимое даёт ErrCorrupt и требует оператора.
func NewFileStore(path string, observer Observer) (*FileStore, error) {
	s := &FileStore{
		path:     path,
		state:    make(domain.Snapshot, 0),
		observer: observerOrNoop(observer),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Snapshot возвращает копию зафиксированного состояния
func (s *FileStore) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone(), nil
}

// Commit повторно проверяет предикат мутации на актуальном состоянии и
// атомарно применяет её. Провал предиката означает, что конкурентный коммит
// успел изменить состояние между Snapshot и Commit, то есть ErrConflict.
func (s *FileStore) Commit(ctx context.Context, mut domain.Mutation) error {
	start := time.Now()

	err := s.commit(ctx, mut)

	outcome := "ok"
	switch {
	case errors.Is(err, ErrConflict):
		outcome = "conflict"
	case err != nil:
		outcome = "error"
	}
	s.observer.CommitObserved(string(mut.Op), outcome, time.Since(start))

	return err
}

func (s *FileStore) commit(ctx context.Context, mut domain.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if mut.Predicate != nil {
		if err := mut.Predicate(s.state); err != nil {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}

	next := s.state.Apply(mut)

	if err := s.persist(next); err != nil {
		return fmt.Errorf("%w: Commit - %v", ErrPersist, err)
	}

	s.state = next
	return nil
}

// Close у файлового хранилища нечего освобождать: файл открывается на время
// каждой записи
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load() error {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// Первый запуск: создаём файл с одним заголовком.
		return s.persist(s.state)
	}
	if err != nil {
		return fmt.Errorf("reservation.store: open %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // legacy rows carry three fields

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return s.persist(s.state)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if !isHeader(header) {
		return fmt.Errorf("%w: %s: unexpected header %v", ErrCorrupt, s.path, header)
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("%w: %s line %d: %v", ErrCorrupt, s.path, line, err)
		}

		res, err := decodeRecord(record)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: %v", ErrCorrupt, s.path, line, err)
		}
		s.state = append(s.state, res)
	}

	return nil
}

// persist пишет всё состояние во временный файл и подменяет им основной
func (s *FileStore) persist(snap domain.Snapshot) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(csvHeader); err != nil {
		tmp.Close()
		return err
	}
	for _, res := range snap {
		record := []string{
			res.Room,
			res.Date.Format(domain.DateFormat),
			res.Slot.String(),
			strconv.Itoa(res.Machine),
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

func isHeader(record []string) bool {
	if len(record) < 3 || len(record) > 4 {
		return false
	}
	for i, field := range record {
		if i < len(csvHeader) && field != csvHeader[i] {
			return false
		}
	}
	return true
}

func decodeRecord(record []string) (domain.Reservation, error) {
	if len(record) != 3 && len(record) != 4 {
		return domain.Reservation{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(record))
	}

	room := record[0]
	if room == "" {
		return domain.Reservation{}, fmt.Errorf("empty room")
	}

	date, err := time.ParseInLocation(domain.DateFormat, record[1], time.UTC)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("bad date %q: %v", record[1], err)
	}

	slot, err := domain.ParseSlot(record[2])
	if err != nil {
		return domain.Reservation{}, err
	}

	// Строки старого формата не содержат machine: считаем её первой.
	machine := domain.MinMachine
	if len(record) == 4 && record[3] != "" {
		machine, err = strconv.Atoi(record[3])
		if err != nil {
			return domain.Reservation{}, fmt.Errorf("bad machine %q: %v", record[3], err)
		}
		if machine < domain.MinMachine || machine > domain.MaxMachine {
			return domain.Reservation{}, fmt.Errorf("machine %d out of range", machine)
		}
	}

	return domain.Reservation{
		Room:    room,
		Date:    date,
		Slot:    slot,
		Machine: machine,
	}, nil
}
