/*
Package queue defines the tasks performed to grow a tree and the stack
that holds them while the tree is being grown.
*/
package queue
