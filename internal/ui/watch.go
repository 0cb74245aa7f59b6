package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mohsinsiddi/tiascan/internal/amounts"
	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/store"
)

// HeadSource is the part of the explorer client the dashboard polls.
type HeadSource interface {
	Head(ctx context.Context) *explorer.Fetch
	Blocks(ctx context.Context, p explorer.Params) *explorer.Fetch
}

// PollMsg carries one polling round. Head and Blocks are nil when their
// request failed; Err joins the failures.
type PollMsg struct {
	Head   *explorer.Head
	Blocks []explorer.Block
	Err    error
	At     time.Time
}

type pollNowMsg struct{}

type watchTickMsg struct{}

const pollTimeout = 20 * time.Second

// WatchModel is the Bubble Tea model for the live head/blocks dashboard.
// Every successful poll is written into the store and the view renders a
// snapshot of it.
type WatchModel struct {
	Network  string
	src      HeadSource
	app      *store.App
	interval time.Duration
	limit    int

	fetching bool
	lastErr  string
	updated  time.Time
	frame    int
	Quitting bool
}

// NewWatchModel wires a dashboard to a source and the application store.
func NewWatchModel(src HeadSource, app *store.App, network string, interval time.Duration, limit int) WatchModel {
	return WatchModel{
		Network:  network,
		src:      src,
		app:      app,
		interval: interval,
		limit:    limit,
		fetching: true,
	}
}

func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.poll(), watchSpinTick())
}

// poll fetches head and latest blocks in one command.
func (m WatchModel) poll() tea.Cmd {
	src, limit := m.src, m.limit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		return Poll(ctx, src, limit)
	}
}

// Poll runs one polling round against src.
func Poll(ctx context.Context, src HeadSource, limit int) PollMsg {
	msg := PollMsg{At: time.Now()}
	var errs []error

	if head, err := explorer.As[explorer.Head](src.Head(ctx)); err != nil {
		errs = append(errs, fmt.Errorf("head: %w", err))
	} else {
		msg.Head = &head
	}
	if blocks, err := explorer.As[[]explorer.Block](src.Blocks(ctx, explorer.Params{Limit: limit})); err != nil {
		errs = append(errs, fmt.Errorf("blocks: %w", err))
	} else {
		msg.Blocks = blocks
	}
	msg.Err = errors.Join(errs...)
	return msg
}

func watchSpinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return watchTickMsg{}
	})
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "r":
			if !m.fetching {
				m.fetching = true
				return m, m.poll()
			}
		}

	case watchTickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, watchSpinTick()

	case PollMsg:
		m.fetching = false
		m.updated = msg.At
		m.lastErr = ""
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
		}
		if msg.Head != nil {
			m.app.SetHead(msg.Head)
		}
		if msg.Blocks != nil {
			m.app.SetLatestBlocks(msg.Blocks)
		}
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return pollNowMsg{} })

	case pollNowMsg:
		if m.fetching {
			return m, nil
		}
		m.fetching = true
		return m, m.poll()
	}

	return m, nil
}

func (m WatchModel) View() string {
	if m.Quitting {
		return ""
	}
	snap := m.app.Snapshot()

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("◈ Celestia  ·  "+m.Network) + "\n")

	switch {
	case m.lastErr != "":
		sb.WriteString(StyleError.Render("✗ "+trimErr(m.lastErr, 70)) + "\n\n")
	case m.fetching:
		sb.WriteString(StyleBrand.Render(spinnerFrames[m.frame]) + StyleMeta.Render(" refreshing…") + "\n\n")
	case !m.updated.IsZero():
		sb.WriteString(StyleMeta.Render("  updated "+m.updated.Format("15:04:05")) + "\n\n")
	default:
		sb.WriteString(StyleMeta.Render("  connecting…") + "\n\n")
	}

	if h := snap.Head; h != nil {
		sb.WriteString(KeyValueBlock("", HeadPairs(h)) + "\n")
	}

	if len(snap.LatestBlocks) == 0 {
		sb.WriteString(StyleMeta.Render("  Waiting for blocks…") + "\n")
	} else {
		sb.WriteString(BlocksTable(snap.LatestBlocks))
	}

	sb.WriteString("\n" + watchControls() + "\n")
	return sb.String()
}

// HeadPairs is the key/value view of a chain head.
func HeadPairs(h *explorer.Head) [][2]string {
	return [][2]string{
		{"Chain", Dash(h.ChainID)},
		{"Height", "#" + amounts.CommaInt(h.LastHeight)},
		{"Last block", Age(h.LastTime)},
		{"Transactions", amounts.CommaInt(uint64(max(h.TotalTx, 0)))},
		{"Accounts", amounts.CommaInt(uint64(max(h.TotalAccounts, 0)))},
		{"Namespaces", amounts.CommaInt(uint64(max(h.TotalNamespaces, 0)))},
		{"Blobs size", FormatBytes(h.TotalBlobsSize)},
		{"Total fees", amounts.TiaComma(h.TotalFee) + " TIA"},
		{"Total supply", amounts.TiaComma(h.TotalSupply) + " TIA"},
	}
}

// BlocksTable renders blocks newest first as provided.
func BlocksTable(blocks []explorer.Block) string {
	tbl := NewTable(
		Column{Title: "HEIGHT", Width: 10, Right: true},
		Column{Title: "AGE", Width: 10},
		Column{Title: "HASH", Width: 13},
		Column{Title: "TXS", Width: 5, Right: true},
		Column{Title: "BLOBS", Width: 10, Right: true},
		Column{Title: "FEE (TIA)", Width: 10, Right: true},
	)
	for _, b := range blocks {
		txs, size, fee := "—", "—", "—"
		if b.Stats != nil {
			txs = amounts.CommaInt(uint64(max(b.Stats.TxCount, 0)))
			size = FormatBytes(b.Stats.BlobsSize)
			fee = amounts.Tia(b.Stats.Fee)
		}
		tbl.AddRow(amounts.CommaInt(b.Height), Age(b.Time), TruncateHash(b.Hash), txs, size, fee)
	}
	return tbl.Render()
}

func watchControls() string {
	sep := StyleMeta.Render("   ")
	var sb strings.Builder
	sb.WriteString(StyleOK.Render("[ r ]"))
	sb.WriteString(StyleMeta.Render(" refresh"))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ q ]"))
	sb.WriteString(StyleMeta.Render(" quit"))
	return sb.String()
}

func trimErr(s string, n int) string {
	if len(s) > n {
		return s[:n] + "…"
	}
	return s
}
