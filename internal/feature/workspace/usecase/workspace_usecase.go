// Package usecase はworkspaceフィーチャーのビジネスロジック（状態遷移とアクションの実行）を実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	classentity "smartbin/internal/feature/classification/domain/entity"
	classusecase "smartbin/internal/feature/classification/usecase"
	"smartbin/internal/feature/workspace/domain/entity"
)

// StateStore はワークスペースの状態を保存するリポジトリインターフェースです。
type StateStore interface {
	// Load は状態を取得します。存在しない場合は ErrWorkspaceNotFound を返します。
	Load(ctx context.Context, id uuid.UUID) (*entity.State, error)
	// Save は状態を丸ごと上書き保存します。
	Save(ctx context.Context, state *entity.State) error
}

// Analyzer は分類結果を表示モデルとして取得するユースケースです。
type Analyzer interface {
	// Analyze は画像を分類します。バックエンド障害時はデモデータを返します。
	Analyze(ctx context.Context, upload classentity.Upload) (*classentity.Analysis, error)
	// Sample はサンプルデータを返します。
	Sample(key string) (*classentity.Analysis, error)
}

// workspaceUsecase はワークスペースへのアクションを実行し、状態を保存します。
type workspaceUsecase struct {
	store    StateStore
	analyzer Analyzer
	now      func() time.Time

	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}

	locksMu sync.Mutex
	locks   map[uuid.UUID]*workspaceLock
}

// workspaceLock は1ワークスペース分の Load→Reduce→Save を直列化します。
type workspaceLock struct {
	mu   sync.Mutex
	refs int
}

// NewWorkspaceUsecase はworkspaceUsecaseの新しいインスタンスを生成します。
func NewWorkspaceUsecase(store StateStore, analyzer Analyzer) *workspaceUsecase {
	return &workspaceUsecase{
		store:    store,
		analyzer: analyzer,
		now:      time.Now,
		inflight: make(map[uuid.UUID]struct{}),
		locks:    make(map[uuid.UUID]*workspaceLock),
	}
}

// Create は空のワークスペースを作成します。
func (u *workspaceUsecase) Create(ctx context.Context) (*entity.State, error) {
	st := entity.NewState(uuid.New(), u.now())
	if err := u.store.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Get はワークスペースの状態を返します。
func (u *workspaceUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	return u.store.Load(ctx, id)
}

// SelectFile はファイルを検証して選択します。
//
// 検証に失敗した場合は FileRejected を適用した状態と検証エラーを両方返します。
func (u *workspaceUsecase) SelectFile(ctx context.Context, id uuid.UUID, filename, contentType string, data []byte) (*entity.State, error) {
	upload, verr := classusecase.ValidateUpload(filename, contentType, data)

	var action entity.Action = entity.FileSelected{Upload: upload}
	if verr != nil {
		action = entity.FileRejected{Notice: classusecase.ValidationMessage(verr)}
	}

	st, err := u.dispatch(ctx, id, action)
	if err != nil {
		return nil, err
	}
	return st, verr
}

// Analyze は選択中のファイルを解析し、結果を反映した状態を返します。
//
// 同じワークスペースで解析が実行中の場合は ErrAnalysisInProgress を返します。
// バックエンドの失敗はデモデータへのフォールバックとして状態に反映され、エラーにはなりません。
func (u *workspaceUsecase) Analyze(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	if !u.claim(id) {
		return nil, ErrAnalysisInProgress
	}
	defer u.release(id)

	upload, err := u.start(ctx, id)
	if err != nil {
		return nil, err
	}

	// 解析中はロックを保持しないため、他の Action は並行して適用される
	analysis, aerr := u.analyzer.Analyze(ctx, upload)
	outcome := outcomeOf(analysis, aerr)

	// クライアントが切断しても結果は保存する
	return u.dispatch(context.WithoutCancel(ctx), id, outcome)
}

// LoadSample はサンプルデータを表示します。
func (u *workspaceUsecase) LoadSample(ctx context.Context, id uuid.UUID, key string) (*entity.State, error) {
	analysis, err := u.analyzer.Sample(key)
	if err != nil {
		return nil, err
	}
	return u.dispatch(ctx, id, entity.SampleLoaded{Analysis: *analysis})
}

// Reset はワークスペースを初期状態に戻します。
func (u *workspaceUsecase) Reset(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	return u.dispatch(ctx, id, entity.Reset{})
}

// start は選択中のファイルを確認して AnalyzeStarted を適用し、解析対象を返します。
func (u *workspaceUsecase) start(ctx context.Context, id uuid.UUID) (classentity.Upload, error) {
	unlock := u.lock(id)
	defer unlock()

	st, err := u.store.Load(ctx, id)
	if err != nil {
		return classentity.Upload{}, err
	}
	if st.File == nil {
		return classentity.Upload{}, ErrNoFileSelected
	}
	upload := *st.File

	if _, err := u.apply(ctx, st, entity.AnalyzeStarted{}); err != nil {
		return classentity.Upload{}, err
	}
	return upload, nil
}

// dispatch は最新の状態を読み込んで Action を適用し、保存します。
// 同じワークスペースへの dispatch は直列に実行されます。
func (u *workspaceUsecase) dispatch(ctx context.Context, id uuid.UUID, a entity.Action) (*entity.State, error) {
	unlock := u.lock(id)
	defer unlock()

	st, err := u.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.apply(ctx, st, a)
}

// lock はワークスペースのロックを取得し、解放関数を返します。
// 使われなくなったロックは解放時に削除します。
func (u *workspaceUsecase) lock(id uuid.UUID) func() {
	u.locksMu.Lock()
	l, ok := u.locks[id]
	if !ok {
		l = &workspaceLock{}
		u.locks[id] = l
	}
	l.refs++
	u.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		u.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(u.locks, id)
		}
		u.locksMu.Unlock()
	}
}

func (u *workspaceUsecase) apply(ctx context.Context, st *entity.State, a entity.Action) (*entity.State, error) {
	next := Reduce(*st, a)
	next.UpdatedAt = u.now()
	if err := u.store.Save(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// outcomeOf は解析結果を終了 Action に変換します。
func outcomeOf(analysis *classentity.Analysis, err error) entity.Action {
	switch {
	case err == nil && analysis.Source == classentity.SourceDemo:
		return entity.AnalyzeFailed{Fallback: *analysis}
	case err == nil:
		return entity.AnalyzeSucceeded{Analysis: *analysis}
	case errors.Is(err, classusecase.ErrEmptyPredictions):
		return entity.AnalyzeEmpty{Notice: "No predictions received from server"}
	default:
		slog.Error("解析に失敗", "error", err)
		return entity.AnalyzeAborted{Notice: "Error: " + err.Error()}
	}
}

func (u *workspaceUsecase) claim(id uuid.UUID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inflight[id]; busy {
		return false
	}
	u.inflight[id] = struct{}{}
	return true
}

func (u *workspaceUsecase) release(id uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inflight, id)
}
