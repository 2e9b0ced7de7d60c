package main

import (
	"errors"
	"log"

	"github.com/limpo1989/rawvec"
)

var errClosed = errors.New("conn closed")

// conn stands in for an element that owns a resource and can fail to copy.
type conn struct {
	id   int
	open bool
}

func (c *conn) CopyFrom(src *conn) error {
	if !src.open {
		return errClosed
	}
	*c = *src
	return nil
}

func (c *conn) Destroy() {
	if c.open {
		log.Printf("close conn %d", c.id)
		c.open = false
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Use vectors
	nums := rawvec.NewVector[int]()
	defer nums.Release()
	for i := 1; i <= 5; i++ {
		if err := nums.PushBack(i); err != nil {
			log.Fatal(err)
		}
		log.Printf("push %d: size %d, capacity %d", i, nums.Size(), nums.Capacity())
	}
	if _, err := nums.Erase(0); err != nil {
		log.Fatal(err)
	}
	log.Println("print vec:", nums.Data())

	// Elements with lifetime hooks
	conns := rawvec.NewVector[conn]()
	defer conns.Release()
	for i := 1; i <= 3; i++ {
		if err := conns.PushBack(conn{id: i, open: true}); err != nil {
			log.Fatal(err)
		}
	}
	if err := conns.PushBack(conn{id: 4}); err != nil {
		log.Printf("push rejected, size still %d: %v", conns.Size(), err)
	}
	conns.PopBack()
	log.Printf("conns left: %d", conns.Size())
}
