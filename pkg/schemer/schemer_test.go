package schemer

import (
	"testing"

	"github.com/gophersource/schemer/internal/value"
)

func evalSrc(t *testing.T, src string) Value {
	t.Helper()
	env := MakeTopLevelEnv()
	datums, err := Read(src, "test", env.Heap())
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	var result Value = Empty
	for _, d := range datums {
		result, err = Eval(d, env)
		if err != nil {
			t.Fatalf("Eval(%q): %v", src, err)
		}
	}
	return result
}

func TestLambdaApplication(t *testing.T) {
	got := evalSrc(t, `(define f (lambda (x) (+ x x))) (f 21)`)
	if got != Int(42) {
		t.Errorf("got %v, want 42", got)
	}
}

func TestNestedLetShadowing(t *testing.T) {
	got := evalSrc(t, `(let ((x 2) (y 3)) (let ((x 7) (z (+ x y))) (* z x)))`)
	if got != Int(35) {
		t.Errorf("got %v, want 35", got)
	}
}

func TestLetrecMutualRecursion(t *testing.T) {
	got := evalSrc(t, `
		(letrec ((even? (lambda (n) (if (zero? n) #t (odd? (- n 1)))))
		         (odd?  (lambda (n) (if (zero? n) #f (even? (- n 1))))))
		  (even? 88))`)
	if got != True {
		t.Errorf("got %v, want #t", got)
	}
}

func TestTailCallSanityDeepMutualRecursion(t *testing.T) {
	got := evalSrc(t, `
		(letrec ((even? (lambda (n) (if (zero? n) #t (odd? (- n 1)))))
		         (odd?  (lambda (n) (if (zero? n) #f (even? (- n 1))))))
		  (even? 100000))`)
	if got != True {
		t.Errorf("got %v, want #t", got)
	}
}

func TestCondArrow(t *testing.T) {
	got := evalSrc(t, `(cond (#f 3) ((+ 4 3) => (lambda (x) (+ x 3))) (else 4))`)
	if got != Int(10) {
		t.Errorf("got %v, want 10", got)
	}
}

func TestMapExpt(t *testing.T) {
	got := evalSrc(t, `(map (lambda (n) (expt n n)) '(1 2 3 4 5))`)
	elems, ok := value.ListToSlice(got)
	if !ok {
		t.Fatalf("map result is not a proper list: %v", got)
	}
	want := []int64{1, 4, 27, 256, 3125}
	if len(elems) != len(want) {
		t.Fatalf("len = %d, want %d", len(elems), len(want))
	}
	for i, w := range want {
		if elems[i] != Int(w) {
			t.Errorf("elem %d = %v, want %d", i, elems[i], w)
		}
	}
}

func TestDelayForceMemoization(t *testing.T) {
	got := evalSrc(t, `(let ((p (delay (+ 1 2)))) (list (force p) (force p)))`)
	elems, ok := value.ListToSlice(got)
	if !ok || len(elems) != 2 {
		t.Fatalf("got %v", got)
	}
	if elems[0] != Int(3) || elems[1] != Int(3) {
		t.Errorf("got %v, want (3 3)", elems)
	}
}

func TestDelayForceReentrantCounterPromise(t *testing.T) {
	env := MakeTopLevelEnv()
	heap := env.Heap()
	program := `
		(define count 0)
		(define x 5)
		(define p
		  (delay (begin (set! count (+ count 1))
		                (if (> count x) count (force p)))))`
	datums, err := Read(program, "test", heap)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range datums {
		if _, err := Eval(d, env); err != nil {
			t.Fatal(err)
		}
	}

	evalOne := func(src string) Value {
		t.Helper()
		ds, err := Read(src, "test", heap)
		if err != nil {
			t.Fatal(err)
		}
		v, err := Eval(ds[0], env)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	if got := evalOne(`(force p)`); got != Int(6) {
		t.Errorf("first (force p) = %v, want 6", got)
	}
	evalOne(`(set! x 10)`)
	if got := evalOne(`(force p)`); got != Int(6) {
		t.Errorf("second (force p) after mutating x = %v, want 6 (memoized)", got)
	}
}

func TestShortCircuitOr(t *testing.T) {
	got := evalSrc(t, `(or (= 2 2) (/ 3 0))`)
	if got != True {
		t.Errorf("got %v, want #t", got)
	}
}

func TestCarCdrOfEmptyListRaises(t *testing.T) {
	env := MakeTopLevelEnv()
	datums, err := Read(`(car '())`, "test", env.Heap())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Eval(datums[0], env); err == nil {
		t.Error("(car '()) should raise an error")
	}
}

func TestDivisionChain(t *testing.T) {
	got := evalSrc(t, `(/ 504 -6 -2)`)
	if got != Int(42) {
		t.Errorf("got %v, want 42", got)
	}
}
