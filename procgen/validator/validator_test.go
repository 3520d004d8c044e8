package validator

import (
	"reflect"
	"strings"
	"testing"
)

func grid(s string) Grid {
	return ParseGrid(strings.TrimSpace(s))
}

func TestFlatCorridorCompletableByWalking(t *testing.T) {
	g := grid(`
################
#P            >#
################`)
	v := New().WithCaps(Caps{MaxFall: 50, Moves: NewMoveSet(MoveWalk, MoveFall)})
	res := v.ValidateGrid(g)
	if !res.Completable {
		t.Fatalf("not completable: %v", res.Issues)
	}
	if res.MechanicsUsed != NewMoveSet(MoveWalk) {
		t.Fatalf("mechanics = %v, want Walk only", res.MechanicsUsed)
	}
	if res.InterestScore <= 0 || res.InterestScore >= DefaultMinInterest {
		t.Fatalf("interest = %.3f, want low but positive", res.InterestScore)
	}
	if res.Interesting {
		t.Fatal("a flat corridor should not count as interesting")
	}
}

func TestMissingMarkers(t *testing.T) {
	v := New()
	if res := v.Validate("####\n#  >\n####"); res.Completable || res.Reason != "no spawn marker" {
		t.Fatalf("got %+v", res)
	}
	if res := v.Validate("####\n#P #\n####"); res.Completable || res.Reason != "no exit marker" {
		t.Fatalf("got %+v", res)
	}
	if res := v.Validate(""); res.Completable {
		t.Fatal("empty level must fail")
	}
}

func TestIsolatedIslandRejected(t *testing.T) {
	g := grid(`
####################
#      ##          #
#      ##          #
#      ##          #
#      ##          #
#      ##          #
#      ##          #
#      ##          #
#P     ##         >#
####################`)
	res := New().ValidateGrid(g)
	if res.Completable {
		t.Fatal("disconnected chambers must not validate")
	}
	if res.Reason != "exit unreachable" {
		t.Fatalf("reason = %q", res.Reason)
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	g := grid(`
############
#P         #
#   ###    #
#      ^^ >#
############`)
	v := New()
	a := v.ValidateGrid(g)
	b := v.ValidateGrid(g)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two runs differ:\n%+v\n%+v", a, b)
	}
}

func TestWallJumpRequiredInShaft(t *testing.T) {
	g := grid(`
##########
#>       #
####     #
####     #
####     #
####     #
####     #
####P    #
##########`)
	res := New().ValidateGrid(g)
	if !res.Completable {
		t.Fatalf("shaft should be climbable: %v", res.Issues)
	}
	if !res.MechanicsUsed.Has(MoveWallJump) {
		t.Fatalf("mechanics = %v, want WallJump on the path", res.MechanicsUsed)
	}
	if !res.Required.WallJump {
		t.Fatal("wall jump should be mandatory")
	}
}

func TestGrappleRequiredOverSpikePit(t *testing.T) {
	g := grid(`
####################
#                  #
#         ?        #
#                  #
#                  #
#P                >#
#####^^^^^^^^^^#####
####################`)
	res := New().ValidateGrid(g)
	if !res.Completable {
		t.Fatalf("grapple crossing should validate: %v", res.Issues)
	}
	if !res.MechanicsUsed.Has(MoveGrapple) {
		t.Fatalf("mechanics = %v, want Grapple on the path", res.MechanicsUsed)
	}
	if !res.Required.Grapple {
		t.Fatal("grapple should be mandatory")
	}
	if res.Required.Bounce || res.Required.Swim {
		t.Fatalf("required = %+v, only grapple expected", res.Required)
	}
}

func TestBounceRequiredWithoutWallJump(t *testing.T) {
	g := grid(`
############
#          #
#>         #
###        #
#          #
#          #
#          #
#P         #
#   @      #
############`)
	caps := DefaultCaps()
	caps.Moves = caps.Moves.Without(MoveWallJump)
	res := New().WithCaps(caps).ValidateGrid(g)
	if !res.Completable {
		t.Fatalf("bounce route should validate: %v", res.Issues)
	}
	if !res.MechanicsUsed.Has(MoveBounce) {
		t.Fatalf("mechanics = %v, want Bounce on the path", res.MechanicsUsed)
	}
	if !res.Required.Bounce {
		t.Fatal("bounce should be mandatory")
	}
}

func TestBottleneckDetection(t *testing.T) {
	g := grid(`
########
#      #
#P    >#
########`)
	res := New().ValidateGrid(g)
	if !res.Completable {
		t.Fatalf("low corridor is still walkable: %v", res.Issues)
	}
	if len(res.Bottlenecks) == 0 {
		t.Fatal("2-tile clearance corridor should be flagged")
	}
}

func TestBottleneckDeduplication(t *testing.T) {
	g := grid(`
#####
#   #
# # #
# # #
# # #
#   #
#####`)
	found := findPassageBottlenecks(g, DefaultGeometryConstraints())
	seen := make(map[[2]int]bool)
	for _, b := range found {
		key := [2]int{b.Pos.X / 3, b.Pos.Y / 3}
		if seen[key] {
			t.Fatalf("duplicate bottleneck cluster at %v", b.Pos)
		}
		seen[key] = true
	}
}

func TestMoveSetOps(t *testing.T) {
	s := NewMoveSet(MoveWalk, MoveJump)
	if s.Count() != 2 || !s.Has(MoveWalk) || s.Has(MoveGrapple) {
		t.Fatalf("set = %v", s)
	}
	if s.Without(MoveJump).Has(MoveJump) {
		t.Fatal("Without should clear the bit")
	}
	if got := s.String(); got != "Walk+Jump" {
		t.Fatalf("String = %q", got)
	}
	if AllMoves().Count() != 7 {
		t.Fatalf("all moves = %d", AllMoves().Count())
	}
}

func TestInterestScoreStaysInRange(t *testing.T) {
	maps := []string{
		"################\n#P            >#\n################",
		"########\n#P ^^ >#\n#  ##  #\n#  ?@  #\n########",
	}
	for _, m := range maps {
		res := New().ValidateGrid(grid(m))
		if res.InterestScore < 0 || res.InterestScore > 1 {
			t.Fatalf("interest %.3f out of range for:\n%s", res.InterestScore, m)
		}
	}
}
