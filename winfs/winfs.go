// Package winfs serves the window registry as a synthetic 9P2000
// filesystem, so running windows can be inspected and driven from the
// shell:
//
//	/index        read: one line per window: "id\ttitle\trect"
//	/<id>/title   read/write: the window title
//	/<id>/rect    read/write: "x0 y0 x1 y1"
//	/<id>/ctl     write: "show", "close", or "update [x0 y0 x1 y1]"
//
// Window objects belong to the UI goroutine, so every operation that
// touches one is posted to the event loop and waited for.
package winfs

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"9fans.net/go/plan9"
	"go.uber.org/zap"

	"github.com/elizafairlady/go-libgui/display"
	"github.com/elizafairlady/go-libgui/eventloop"
	"github.com/elizafairlady/go-libgui/geom"
	"github.com/elizafairlady/go-libgui/window"
)

// Server is the 9P file server over a window registry.
type Server struct {
	reg  *window.Registry
	loop *eventloop.Loop
	log  *zap.Logger
}

// New returns a server over reg, running window operations through
// loop. A nil logger is replaced with a no-op one.
func New(reg *window.Registry, loop *eventloop.Loop, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{reg: reg, loop: loop, log: log}
}

// Serve accepts 9P connections on ln until Accept fails.
func (s *Server) Serve(ln net.Listener) error {
	for {
		nc, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.serveConn(nc)
	}
}

// ServeConn serves a single 9P connection, returning when the client
// hangs up.
func (s *Server) ServeConn(rwc io.ReadWriteCloser) {
	s.serveConn(rwc)
}

// onUI runs f on the UI goroutine and waits for it to finish.
func (s *Server) onUI(f func()) {
	done := make(chan struct{})
	s.loop.PostFunc(func() {
		f()
		close(done)
	})
	<-done
}

// Qid paths. The root and index are fixed; window nodes encode the
// window id and the node kind.
const (
	qidRoot  uint64 = 0
	qidIndex uint64 = 1
)

const (
	kindDir = iota
	kindTitle
	kindRect
	kindCtl
)

func winQid(id display.WindowID, kind int) uint64 {
	return (uint64(id)+1)<<4 | uint64(kind)
}

func splitQid(path uint64) (display.WindowID, int) {
	return display.WindowID(path>>4) - 1, int(path & 0xF)
}

func dirQid(path uint64) plan9.Qid {
	return plan9.Qid{Path: path, Type: plan9.QTDIR}
}

func fileQid(path uint64) plan9.Qid {
	return plan9.Qid{Path: path, Type: plan9.QTFILE}
}

func now() uint32 { return uint32(time.Now().Unix()) }

func dirBytes(d *plan9.Dir) []byte {
	b, _ := d.Bytes()
	return b
}

func mkDir(qid plan9.Qid, mode plan9.Perm, name string, length int) *plan9.Dir {
	return &plan9.Dir{
		Qid:    qid,
		Mode:   mode,
		Atime:  now(),
		Mtime:  now(),
		Length: uint64(length),
		Name:   name,
		Uid:    "none",
		Gid:    "none",
		Muid:   "none",
	}
}

func formatRect(r geom.Rectangle) string {
	return fmt.Sprintf("%d %d %d %d\n", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func parseRect(s string) (geom.Rectangle, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return geom.ZR, fmt.Errorf("expected 4 integers, got %d fields", len(fields))
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return geom.ZR, fmt.Errorf("bad coordinate %q", f)
		}
		v[i] = n
	}
	return geom.Rect(v[0], v[1], v[2], v[3]), nil
}

// fidState tracks the server-side state of a fid.
type fidState struct {
	qid plan9.Qid
}

// conn handles a single 9P connection.
type conn struct {
	srv   *Server
	rwc   io.ReadWriteCloser
	msize uint32

	mu   sync.Mutex
	fids map[uint32]*fidState
}

func (s *Server) serveConn(rwc io.ReadWriteCloser) {
	c := &conn{srv: s, rwc: rwc, fids: make(map[uint32]*fidState)}
	defer rwc.Close()
	for {
		tx, err := plan9.ReadFcall(rwc)
		if err != nil {
			if err != io.EOF {
				s.log.Debug("winfs read fcall", zap.Error(err))
			}
			return
		}
		rx := c.handle(tx)
		rx.Tag = tx.Tag
		if err := plan9.WriteFcall(rwc, rx); err != nil {
			s.log.Debug("winfs write fcall", zap.Error(err))
			return
		}
	}
}

func (c *conn) getFid(fid uint32) *fidState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fids[fid]
}

func (c *conn) setFid(fid uint32, f *fidState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fids[fid] = f
}

func (c *conn) delFid(fid uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fids, fid)
}

func rerror(msg string) *plan9.Fcall {
	return &plan9.Fcall{Type: plan9.Rerror, Ename: msg}
}

func (c *conn) handle(tx *plan9.Fcall) *plan9.Fcall {
	switch tx.Type {
	case plan9.Tversion:
		return c.tversion(tx)
	case plan9.Tauth:
		return rerror("authentication not required")
	case plan9.Tattach:
		return c.tattach(tx)
	case plan9.Tflush:
		return &plan9.Fcall{Type: plan9.Rflush}
	case plan9.Twalk:
		return c.twalk(tx)
	case plan9.Topen:
		return c.topen(tx)
	case plan9.Tcreate:
		return rerror("create prohibited")
	case plan9.Tread:
		return c.tread(tx)
	case plan9.Twrite:
		return c.twrite(tx)
	case plan9.Tclunk:
		return c.tclunk(tx)
	case plan9.Tremove:
		return rerror("remove prohibited")
	case plan9.Tstat:
		return c.tstat(tx)
	case plan9.Twstat:
		return rerror("wstat prohibited")
	default:
		return rerror(fmt.Sprintf("unknown message type %d", tx.Type))
	}
}

func (c *conn) tversion(tx *plan9.Fcall) *plan9.Fcall {
	c.msize = tx.Msize
	if c.msize > 65536 {
		c.msize = 65536
	}
	return &plan9.Fcall{
		Type:    plan9.Rversion,
		Msize:   c.msize,
		Version: plan9.VERSION9P,
	}
}

func (c *conn) tattach(tx *plan9.Fcall) *plan9.Fcall {
	c.setFid(tx.Fid, &fidState{qid: dirQid(qidRoot)})
	return &plan9.Fcall{Type: plan9.Rattach, Qid: dirQid(qidRoot)}
}

// walkName resolves one walk step from cur.
func (c *conn) walkName(cur plan9.Qid, name string) (plan9.Qid, bool) {
	if name == ".." {
		return dirQid(qidRoot), true
	}
	if cur.Path == qidRoot {
		if name == "index" {
			return fileQid(qidIndex), true
		}
		n, err := strconv.Atoi(name)
		if err != nil {
			return plan9.Qid{}, false
		}
		id := display.WindowID(n)
		if c.srv.reg.Lookup(id) == nil {
			return plan9.Qid{}, false
		}
		return dirQid(winQid(id, kindDir)), true
	}
	id, kind := splitQid(cur.Path)
	if kind != kindDir {
		return plan9.Qid{}, false
	}
	switch name {
	case "title":
		return fileQid(winQid(id, kindTitle)), true
	case "rect":
		return fileQid(winQid(id, kindRect)), true
	case "ctl":
		return fileQid(winQid(id, kindCtl)), true
	}
	return plan9.Qid{}, false
}

func (c *conn) twalk(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}
	cur := f.qid
	wqid := make([]plan9.Qid, 0, len(tx.Wname))
	for _, name := range tx.Wname {
		if cur.Type&plan9.QTDIR == 0 {
			break
		}
		next, ok := c.walkName(cur, name)
		if !ok {
			if len(wqid) == 0 {
				return rerror("file not found")
			}
			break
		}
		cur = next
		wqid = append(wqid, cur)
	}
	if len(wqid) == len(tx.Wname) {
		c.setFid(tx.Newfid, &fidState{qid: cur})
	}
	return &plan9.Fcall{Type: plan9.Rwalk, Wqid: wqid}
}

func (c *conn) topen(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}
	return &plan9.Fcall{
		Type:   plan9.Ropen,
		Qid:    f.qid,
		Iounit: c.msize - plan9.IOHDRSIZE,
	}
}

// indexContent builds the /index listing on the UI goroutine.
func (c *conn) indexContent() []byte {
	var sb strings.Builder
	c.srv.onUI(func() {
		for _, id := range c.srv.reg.IDs() {
			w := c.srv.reg.Lookup(id)
			if w == nil {
				continue
			}
			title, err := w.Title()
			if err != nil {
				title = "?"
			}
			r := w.Rect()
			fmt.Fprintf(&sb, "%d\t%s\t%d %d %d %d\n",
				int(id), title, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
		}
	})
	return []byte(sb.String())
}

// fileContent builds the read content for a window node.
func (c *conn) fileContent(id display.WindowID, kind int) ([]byte, error) {
	var data []byte
	var err error
	c.srv.onUI(func() {
		w := c.srv.reg.Lookup(id)
		if w == nil {
			err = fmt.Errorf("window %d gone", id)
			return
		}
		switch kind {
		case kindTitle:
			var title string
			if title, err = w.Title(); err == nil {
				data = []byte(title + "\n")
			}
		case kindRect:
			data = []byte(formatRect(w.Rect()))
		case kindCtl:
			data = nil
		}
	})
	return data, err
}

// dirContent builds the byte stream for reading a directory.
func (c *conn) dirContent(path uint64) ([]byte, error) {
	if path == qidRoot {
		var out []byte
		out = append(out, dirBytes(mkDir(fileQid(qidIndex), 0444, "index", 0))...)
		c.srv.onUI(func() {
			for _, id := range c.srv.reg.IDs() {
				name := strconv.Itoa(int(id))
				out = append(out, dirBytes(mkDir(dirQid(winQid(id, kindDir)), plan9.Perm(plan9.DMDIR|0555), name, 0))...)
			}
		})
		return out, nil
	}
	id, kind := splitQid(path)
	if kind != kindDir {
		return nil, fmt.Errorf("not a directory")
	}
	var out []byte
	out = append(out, dirBytes(mkDir(fileQid(winQid(id, kindTitle)), 0644, "title", 0))...)
	out = append(out, dirBytes(mkDir(fileQid(winQid(id, kindRect)), 0644, "rect", 0))...)
	out = append(out, dirBytes(mkDir(fileQid(winQid(id, kindCtl)), 0222, "ctl", 0))...)
	return out, nil
}

func (c *conn) tread(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}

	var all []byte
	var err error
	switch {
	case f.qid.Type&plan9.QTDIR != 0:
		all, err = c.dirContent(f.qid.Path)
	case f.qid.Path == qidIndex:
		all = c.indexContent()
	default:
		id, kind := splitQid(f.qid.Path)
		all, err = c.fileContent(id, kind)
	}
	if err != nil {
		return rerror(err.Error())
	}

	var data []byte
	if tx.Offset < uint64(len(all)) {
		data = all[tx.Offset:]
	}
	if uint32(len(data)) > tx.Count {
		data = data[:tx.Count]
	}
	return &plan9.Fcall{Type: plan9.Rread, Data: data}
}

func (c *conn) twrite(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}
	if f.qid.Type&plan9.QTDIR != 0 || f.qid.Path == qidIndex || f.qid.Path == qidRoot {
		return rerror("write prohibited")
	}
	id, kind := splitQid(f.qid.Path)
	text := strings.TrimSpace(string(tx.Data))

	var err error
	c.srv.onUI(func() {
		w := c.srv.reg.Lookup(id)
		if w == nil {
			err = fmt.Errorf("window %d gone", id)
			return
		}
		switch kind {
		case kindTitle:
			err = w.SetTitle(text)
		case kindRect:
			var r geom.Rectangle
			if r, err = parseRect(text); err == nil {
				err = w.SetRect(r)
			}
		case kindCtl:
			err = applyCtl(w, text)
		default:
			err = fmt.Errorf("write prohibited")
		}
	})
	if err != nil {
		return rerror(err.Error())
	}
	return &plan9.Fcall{Type: plan9.Rwrite, Count: uint32(len(tx.Data))}
}

// applyCtl runs one control command against w.
func applyCtl(w *window.Window, cmd string) error {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return fmt.Errorf("empty control message")
	}
	switch fields[0] {
	case "show":
		return w.Show()
	case "close":
		return w.Close()
	case "update":
		if len(fields) == 1 {
			return w.Update(geom.ZR)
		}
		r, err := parseRect(strings.Join(fields[1:], " "))
		if err != nil {
			return err
		}
		return w.Update(r)
	}
	return fmt.Errorf("unknown control message %q", fields[0])
}

func (c *conn) tclunk(tx *plan9.Fcall) *plan9.Fcall {
	c.delFid(tx.Fid)
	return &plan9.Fcall{Type: plan9.Rclunk}
}

func (c *conn) tstat(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}

	var d *plan9.Dir
	switch {
	case f.qid.Path == qidRoot:
		d = mkDir(dirQid(qidRoot), plan9.Perm(plan9.DMDIR|0555), "/", 0)
	case f.qid.Path == qidIndex:
		d = mkDir(fileQid(qidIndex), 0444, "index", 0)
	default:
		id, kind := splitQid(f.qid.Path)
		switch kind {
		case kindDir:
			d = mkDir(dirQid(f.qid.Path), plan9.Perm(plan9.DMDIR|0555), strconv.Itoa(int(id)), 0)
		case kindTitle:
			d = mkDir(fileQid(f.qid.Path), 0644, "title", 0)
		case kindRect:
			d = mkDir(fileQid(f.qid.Path), 0644, "rect", 0)
		case kindCtl:
			d = mkDir(fileQid(f.qid.Path), 0222, "ctl", 0)
		default:
			return rerror("unknown qid")
		}
	}
	return &plan9.Fcall{Type: plan9.Rstat, Stat: dirBytes(d)}
}
